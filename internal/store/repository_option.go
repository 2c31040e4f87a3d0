// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-press-sync/internal/logger"
)

type optionRepository struct {
	*DB
	logger *logger.Logger
}

// NewOptionRepository constructs an [OptionRepository] backed by db.
func NewOptionRepository(db *DB, logger *logger.Logger) OptionRepository {
	logger.Debug().Msg("creating option repository")
	return &optionRepository{
		DB:     db,
		logger: logger,
	}
}

// GetOption returns the raw value of a site option, or [ErrNotFound].
func (r *optionRepository) GetOption(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("option_value").
		From(r.tables.Options()).
		Where(sq.Eq{"option_name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "optionRepository.GetOption").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value sql.NullString
	err = r.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "optionRepository.GetOption").Str("option", name).Msg("failed to read option")
		return "", r.queryError(err)
	}

	return value.String, nil
}
