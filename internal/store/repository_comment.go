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

type commentRepository struct {
	*DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

// Count returns the number of comments in any status.
func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("COUNT(*)").
		From(r.tables.Comments()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "commentRepository.Count").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "commentRepository.Count").Msg("failed to count comments")
		return 0, r.queryError(err)
	}

	return total, nil
}

// FindPage returns one page of comments ordered by parent, then ID.
func (r *commentRepository) FindPage(ctx context.Context, limit, offset uint64) ([]models.Fields, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("*").
		From(r.tables.Comments()).
		OrderBy("comment_parent ASC", r.col("comment_ID")+" ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "commentRepository.FindPage").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "commentRepository.FindPage", query, args)
}

// FindByPost returns the comments of one post whose approval status is in
// statuses, newest first.
func (r *commentRepository) FindByPost(ctx context.Context, postID int64, statuses []string) ([]models.Fields, error) {
	log := logger.FromContext(ctx)

	builder := r.builder().
		Select("*").
		From(r.tables.Comments()).
		Where(sq.Eq{r.col("comment_post_ID"): postID})
	if len(statuses) > 0 {
		builder = builder.Where(sq.Eq{"comment_approved": statuses})
	}

	query, args, err := builder.
		OrderBy("comment_date_gmt DESC", r.col("comment_ID")+" DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "commentRepository.FindByPost").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "commentRepository.FindByPost", query, args)
}

func (r *commentRepository) query(ctx context.Context, fn, query string, args []any) ([]models.Fields, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for comments")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	comments, err := scanFields(rows)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan comments")
		return nil, err
	}

	return comments, nil
}
