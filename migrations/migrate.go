// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the sandbox schema: the subset of the core
// tables, the shop order item tables and the p2p table that press-sync
// reads, all with the stock "wp_" prefix.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// TablePrefix is the prefix of every table the sandbox schema creates.
const TablePrefix = "wp_"

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies the sandbox schema to db. dialect is the database/sql
// driver name; only "sqlite3" and "mysql" are supported.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	switch dialect {
	case "sqlite3", "mysql":
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
