// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnsupportedDriver is returned by NewConnect for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrUnsupportedSchema is returned by Migrate when the sandbox schema
	// cannot serve the configured table prefix.
	ErrUnsupportedSchema = errors.New("unsupported sandbox schema")

	// ErrNotFound is returned when a row looked up by key does not exist.
	ErrNotFound = errors.New("row is not found")

	// ErrRetryable marks failures the driver reports as transient (lost
	// connection, deadlock, lock timeout). It is always joined with one of
	// the low-level errors below.
	ErrRetryable = errors.New("source database is temporarily unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
