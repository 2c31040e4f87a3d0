// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers treated as transient.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html.
const (
	mysqlErrTooManyConnections  = 1040
	mysqlErrServerShutdown      = 1053
	mysqlErrNetReadInterrupted  = 1159
	mysqlErrNetWriteInterrupted = 1161
	mysqlErrLockWaitTimeout     = 1205
	mysqlErrLockDeadlock        = 1213
	mysqlErrQueryInterrupted    = 1317
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL and MariaDB.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Lost connections and the server
// error numbers listed above are [Retryable]; everything else, including
// syntax and unknown-table errors, is [NonRetryable].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrTooManyConnections,
			mysqlErrServerShutdown,
			mysqlErrNetReadInterrupted,
			mysqlErrNetWriteInterrupted,
			mysqlErrLockWaitTimeout,
			mysqlErrLockDeadlock,
			mysqlErrQueryInterrupted:
			return Retryable
		}
	}

	return NonRetryable
}
