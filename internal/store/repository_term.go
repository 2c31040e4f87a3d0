// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-press-sync/internal/logger"
)

type termRepository struct {
	*DB
	logger *logger.Logger
}

// NewTermRepository constructs a [TermRepository] backed by db.
func NewTermRepository(db *DB, logger *logger.Logger) TermRepository {
	logger.Debug().Msg("creating term repository")
	return &termRepository{
		DB:     db,
		logger: logger,
	}
}

// FindTaxonomiesByPostType returns the taxonomies that have at least one term
// assigned to a post of postType, in name order.
func (r *termRepository) FindTaxonomiesByPostType(ctx context.Context, postType string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("DISTINCT tt.taxonomy").
		From(r.tables.TermTaxonomy() + " AS tt").
		Join(r.tables.TermRelationships() + " AS tr ON tr.term_taxonomy_id = tt.term_taxonomy_id").
		Join(r.tables.Posts() + " AS p ON p." + r.col("ID") + " = tr.object_id").
		Where(sq.Eq{"p.post_type": postType}).
		OrderBy("tt.taxonomy ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "termRepository.FindTaxonomiesByPostType").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "termRepository.FindTaxonomiesByPostType").
			Str("post_type", postType).
			Msg("failed to execute query for taxonomies")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	taxonomies, err := scanStrings(rows)
	if err != nil {
		log.Err(err).Str("func", "termRepository.FindTaxonomiesByPostType").Msg("failed to scan taxonomies")
		return nil, err
	}

	return taxonomies, nil
}

// FindTermNames returns, for each of taxonomies, the names of the terms
// assigned to objectID ordered by name. Every requested taxonomy is present
// in the result, with an empty list when nothing is assigned.
func (r *termRepository) FindTermNames(ctx context.Context, objectID int64, taxonomies []string) (map[string][]string, error) {
	log := logger.FromContext(ctx)

	result := make(map[string][]string, len(taxonomies))
	for _, taxonomy := range taxonomies {
		result[taxonomy] = []string{}
	}
	if len(taxonomies) == 0 {
		return result, nil
	}

	query, args, err := r.builder().
		Select("tt.taxonomy", "t.name").
		From(r.tables.Terms() + " AS t").
		Join(r.tables.TermTaxonomy() + " AS tt ON tt.term_id = t.term_id").
		Join(r.tables.TermRelationships() + " AS tr ON tr.term_taxonomy_id = tt.term_taxonomy_id").
		Where(sq.Eq{"tr.object_id": objectID}).
		Where(sq.Eq{"tt.taxonomy": taxonomies}).
		OrderBy("t.name ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "termRepository.FindTermNames").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "termRepository.FindTermNames").
			Int64("object_id", objectID).
			Msg("failed to execute query for term names")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var taxonomy, name sql.NullString
		if err := rows.Scan(&taxonomy, &name); err != nil {
			log.Err(err).Str("func", "termRepository.FindTermNames").Msg("failed to scan term row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result[taxonomy.String] = append(result[taxonomy.String], name.String)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "termRepository.FindTermNames").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
