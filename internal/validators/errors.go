// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidKind    = errors.New("invalid objects_to_sync")
	ErrInvalidPage    = errors.New("paged must be a positive integer")
	ErrInvalidURL     = errors.New("invalid url")
)
