// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidConfig wraps struct tag validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidSourceConfigs indicates that neither a source DSN nor a
	// page-driving API address was configured.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidTargetConfigs indicates an unusable receiving site setting
	// (for example, a press_sync_key containing whitespace).
	ErrInvalidTargetConfigs = errors.New("invalid target configuration")
)
