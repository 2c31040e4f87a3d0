// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/models"
)

// userRepository implements [UserRepository] over the users and usermeta
// tables.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Count returns the number of registered users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("COUNT(*)").
		From(r.db.tables.Users()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Count").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.Count").Msg("failed to count users")
		return 0, r.db.queryError(err)
	}

	return total, nil
}

// FindPage returns one page of users ordered by login, then ID.
func (r *userRepository) FindPage(ctx context.Context, limit, offset uint64) ([]models.Fields, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("*").
		From(r.db.tables.Users()).
		OrderBy("user_login ASC", r.db.col("ID")+" ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindPage").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindPage").
			Uint64("offset", offset).
			Msg("failed to execute query for a page of users")
		return nil, r.db.queryError(err)
	}
	defer rows.Close()

	users, err := scanFields(rows)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindPage").Msg("failed to scan users")
		return nil, err
	}

	return users, nil
}

// FindMeta returns every meta value of a user, grouped by key.
func (r *userRepository) FindMeta(ctx context.Context, userID int64) (map[string][]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("meta_key", "meta_value").
		From(r.db.tables.UserMeta()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("umeta_id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindMeta").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindMeta").Int64("user_id", userID).Msg("failed to execute query")
		return nil, r.db.queryError(err)
	}
	defer rows.Close()

	meta, err := scanMeta(rows)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindMeta").Int64("user_id", userID).Msg("failed to scan user meta")
		return nil, err
	}

	return meta, nil
}
