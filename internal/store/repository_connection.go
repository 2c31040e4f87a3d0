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

type connectionRepository struct {
	*DB
	logger *logger.Logger
}

// NewConnectionRepository constructs a [ConnectionRepository] backed by db.
func NewConnectionRepository(db *DB, logger *logger.Logger) ConnectionRepository {
	logger.Debug().Msg("creating connection repository")
	return &connectionRepository{
		DB:     db,
		logger: logger,
	}
}

// FindConnections returns the p2p_from, p2p_to and p2p_type of every
// connection touching postID on either side.
func (r *connectionRepository) FindConnections(ctx context.Context, postID int64) ([]models.Fields, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select("p2p_from", "p2p_to", "p2p_type").
		From(r.tables.P2P()).
		Where(sq.Or{sq.Eq{"p2p_from": postID}, sq.Eq{"p2p_to": postID}}).
		OrderBy("p2p_id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "connectionRepository.FindConnections").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "connectionRepository.FindConnections").Int64("post_id", postID).Msg("failed to execute query")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	connections, err := scanFields(rows)
	if err != nil {
		log.Err(err).Str("func", "connectionRepository.FindConnections").Msg("failed to scan connections")
		return nil, err
	}

	return connections, nil
}
