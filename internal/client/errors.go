// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNotConnected is returned when the receiving site does not answer the
// status probe with the configured key.
var ErrNotConnected = errors.New("receiving site is not connected")
