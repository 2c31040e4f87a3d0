// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUnknownKind           = errors.New("unknown objects_to_sync")
	ErrInvalidPage           = errors.New("page index must be 1 or greater")
	ErrTargetNotConfigured   = errors.New("receiving site is not configured")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMalformedSerializedValue = errors.New("malformed serialized value")
)
