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

// postRepository implements [PostRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// that queries are traced with the page they serve.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CountByType counts posts of postType in any status.
func (r *postRepository) CountByType(ctx context.Context, postType string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("COUNT(*)").
		From(r.tables.Posts()).
		Where(sq.Eq{"post_type": postType}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "postRepository.CountByType").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "postRepository.CountByType").
			Str("post_type", postType).
			Msg("failed to count posts")
		return 0, r.queryError(err)
	}

	return total, nil
}

// FindPage returns one page of posts of postType in any status, ordered by
// parent then ID so that parents precede children and pages are disjoint.
func (r *postRepository) FindPage(ctx context.Context, postType string, limit, offset uint64) ([]models.Fields, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("*").
		From(r.tables.Posts()).
		Where(sq.Eq{"post_type": postType}).
		OrderBy("post_parent ASC", r.col("ID")+" ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPage").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.FindPage").
			Str("post_type", postType).
			Uint64("offset", offset).
			Msg("failed to execute query for a page of posts")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	posts, err := scanFields(rows)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPage").Msg("failed to scan posts")
		return nil, err
	}

	return posts, nil
}

// FindByID returns the full row of one post, or [ErrNotFound].
func (r *postRepository) FindByID(ctx context.Context, id int64) (models.Fields, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("*").
		From(r.tables.Posts()).
		Where(sq.Eq{r.col("ID"): id}).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindByID").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindByID").Int64("post_id", id).Msg("failed to execute query")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	posts, err := scanFields(rows)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindByID").Int64("post_id", id).Msg("failed to scan post")
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNotFound
	}

	return posts[0], nil
}

// FindMeta returns every meta value of a post, grouped by key in storage
// order.
func (r *postRepository) FindMeta(ctx context.Context, postID int64) (map[string][]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("meta_key", "meta_value").
		From(r.tables.PostMeta()).
		Where(sq.Eq{"post_id": postID}).
		OrderBy("meta_id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindMeta").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindMeta").Int64("post_id", postID).Msg("failed to execute query")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	meta, err := scanMeta(rows)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindMeta").Int64("post_id", postID).Msg("failed to scan post meta")
		return nil, err
	}

	return meta, nil
}
