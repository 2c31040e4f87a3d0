// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/migrations"
)

// Supported database/sql driver names.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB is a read-only handle on the source installation's database.
type DB struct {
	*sql.DB
	driver             string
	tables             Tables
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the source database with the driver named in cfg.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case DriverMySQL, "":
		return NewConnectMySQL(ctx, cfg, log)
	case DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// NewDB wraps an already opened connection. It is used by tests and by
// callers that manage the connection themselves.
func NewDB(conn *sql.DB, driver, tablePrefix string, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		tables:             NewTables(tablePrefix),
		errorClassificator: NewErrorClassifier(driver),
		logger:             log,
	}
}

// DriverName returns the database/sql driver name of db.
func (db *DB) DriverName() string {
	return db.driver
}

// Tables returns the prefixed table names of db.
func (db *DB) Tables() Tables {
	return db.tables
}

// Migrate applies the sandbox schema. It only makes sense for an empty
// sqlite or mysql database with the "wp_" prefix.
func (db *DB) Migrate() error {
	if db.tables.Prefix() != migrations.TablePrefix {
		return fmt.Errorf("%w: sandbox schema uses prefix %q, got %q", ErrUnsupportedSchema, migrations.TablePrefix, db.tables.Prefix())
	}

	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a squirrel statement builder using the placeholder format
// of the driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// col quotes mixed-case column names for PostgreSQL, which folds unquoted
// identifiers to lower case.
func (db *DB) col(name string) string {
	if db.driver == DriverPostgres {
		return `"` + name + `"`
	}

	return name
}

// queryError wraps err with ErrExecutingQuery, and with ErrRetryable when the
// driver reports a transient failure.
func (db *DB) queryError(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrRetryable, ErrExecutingQuery, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func configureConnection(conn *sql.DB) {
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
}
