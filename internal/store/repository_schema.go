// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-press-sync/internal/logger"
)

type schemaInspector struct {
	*DB
	logger *logger.Logger
}

// NewSchemaInspector constructs a [SchemaInspector] backed by db.
func NewSchemaInspector(db *DB, logger *logger.Logger) SchemaInspector {
	return &schemaInspector{
		DB:     db,
		logger: logger,
	}
}

// TableExists reports whether table exists in the current database/schema.
func (s *schemaInspector) TableExists(ctx context.Context, table string) (bool, error) {
	log := logger.FromContext(ctx)

	var builder sq.SelectBuilder
	switch s.driver {
	case DriverSQLite:
		builder = s.builder().
			Select("COUNT(*)").
			From("sqlite_master").
			Where(sq.Eq{"type": "table", "name": table})
	case DriverPostgres:
		builder = s.builder().
			Select("COUNT(*)").
			From("information_schema.tables").
			Where("table_schema = current_schema()").
			Where(sq.Eq{"table_name": table})
	default:
		builder = s.builder().
			Select("COUNT(*)").
			From("information_schema.tables").
			Where("table_schema = DATABASE()").
			Where(sq.Eq{"table_name": table})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "schemaInspector.TableExists").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = s.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "schemaInspector.TableExists").Str("table", table).Msg("failed to probe table")
		return false, s.queryError(err)
	}

	return count > 0, nil
}
