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

type orderItemRepository struct {
	*DB
	logger *logger.Logger
}

// NewOrderItemRepository constructs an [OrderItemRepository] backed by db.
func NewOrderItemRepository(db *DB, logger *logger.Logger) OrderItemRepository {
	logger.Debug().Msg("creating order item repository")
	return &orderItemRepository{
		DB:     db,
		logger: logger,
	}
}

// FindItems returns the full rows of the line items of an order.
func (r *orderItemRepository) FindItems(ctx context.Context, orderID int64) ([]models.Fields, error) {
	query, args, err := r.builder().
		Select("*").
		From(r.tables.OrderItems()).
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("order_item_id ASC").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "orderItemRepository.FindItems").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "orderItemRepository.FindItems", query, args)
}

// FindItemMeta returns the full meta rows of one line item.
func (r *orderItemRepository) FindItemMeta(ctx context.Context, orderItemID int64) ([]models.Fields, error) {
	query, args, err := r.builder().
		Select("*").
		From(r.tables.OrderItemMeta()).
		Where(sq.Eq{"order_item_id": orderItemID}).
		OrderBy("meta_id ASC").
		ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "orderItemRepository.FindItemMeta").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.query(ctx, "orderItemRepository.FindItemMeta", query, args)
}

func (r *orderItemRepository) query(ctx context.Context, fn, query string, args []any) ([]models.Fields, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, r.queryError(err)
	}
	defer rows.Close()

	result, err := scanFields(rows)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to scan rows")
		return nil, err
	}

	return result, nil
}
