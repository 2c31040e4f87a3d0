// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/models"
)

const (
	metaAttachedFile = "_wp_attached_file"
	uploadsPath      = "/wp-content/uploads/"
)

// Comment statuses attached to a post: approved and pending.
var postCommentStatuses = []string{"1", "0"}

type relationshipResolver struct {
	posts      store.PostRepository
	comments   store.CommentRepository
	terms      store.TermRepository
	orderItems store.OrderItemRepository

	// connections is nil when the legacy connections table is absent.
	connections store.ConnectionRepository

	logger *logger.Logger
}

func NewRelationshipResolver(
	posts store.PostRepository,
	comments store.CommentRepository,
	terms store.TermRepository,
	orderItems store.OrderItemRepository,
	connections store.ConnectionRepository,
	logger *logger.Logger,
) RelationshipResolver {
	return &relationshipResolver{
		posts:       posts,
		comments:    comments,
		terms:       terms,
		orderItems:  orderItems,
		connections: connections,
		logger:      logger,
	}
}

func (r *relationshipResolver) GetRelationships(ctx context.Context, objectID int64, taxonomies []string) (map[string][]string, error) {
	if len(taxonomies) == 0 {
		return map[string][]string{}, nil
	}

	return r.terms.FindTermNames(ctx, objectID, taxonomies)
}

func (r *relationshipResolver) FeaturedImage(ctx context.Context, originURL string, thumbnailID int64) (models.Fields, bool, error) {
	if thumbnailID <= 0 {
		return nil, false, nil
	}

	media, err := r.posts.FindByID(ctx, thumbnailID)
	if errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Warn().
			Str("func", "relationshipResolver.FeaturedImage").
			Int64("thumbnail_id", thumbnailID).
			Msg("thumbnail points to a missing media row")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("media %d: %w", thumbnailID, err)
	}

	meta, err := r.posts.FindMeta(ctx, thumbnailID)
	if err != nil {
		return nil, false, fmt.Errorf("meta of media %d: %w", thumbnailID, err)
	}

	media[models.FieldAttachmentURL] = originURL + uploadsPath + firstString(meta[metaAttachedFile])

	return media, true, nil
}

func (r *relationshipResolver) PostComments(ctx context.Context, postID int64) ([]models.Fields, error) {
	return r.comments.FindByPost(ctx, postID, postCommentStatuses)
}

func (r *relationshipResolver) OrderItems(ctx context.Context, orderID int64) ([]models.Fields, map[string]any, error) {
	items, err := r.orderItems.FindItems(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("items of order %d: %w", orderID, err)
	}

	itemMeta := make(map[string]any, len(items))
	for _, item := range items {
		itemID := item.Int64("order_item_id")

		rows, err := r.orderItems.FindItemMeta(ctx, itemID)
		if err != nil {
			return nil, nil, fmt.Errorf("meta of order item %d: %w", itemID, err)
		}
		itemMeta[strconv.FormatInt(itemID, 10)] = rows
	}

	return items, itemMeta, nil
}

func (r *relationshipResolver) Connections(ctx context.Context, postID int64) ([]models.Fields, bool, error) {
	if r.connections == nil {
		return nil, false, nil
	}

	rows, err := r.connections.FindConnections(ctx, postID)
	if err != nil {
		return nil, true, fmt.Errorf("connections of %d: %w", postID, err)
	}

	return rows, true, nil
}
