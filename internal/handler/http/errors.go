// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPaged is returned when the "paged" parameter is not an
	// integer.
	ErrInvalidPaged = errors.New("paged must be an integer")

	// ErrInvalidBody is returned when a JSON body cannot be decoded.
	ErrInvalidBody = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when form values cannot be parsed.
	ErrInvalidForm = errors.New("invalid form data")
)
