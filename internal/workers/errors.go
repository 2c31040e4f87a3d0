// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

// ErrStopped is returned by PageDriver.Run when its context was cancelled
// between two pages.
var ErrStopped = errors.New("migration stopped")
