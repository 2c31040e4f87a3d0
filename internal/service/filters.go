// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/MKhiriev/go-press-sync/models"
)

// Order meta keys read by the receiving site's order item importer.
const (
	MetaOrderItems    = "_woocommerce_order_items"
	MetaOrderItemMeta = "_woocommerce_order_itemmeta"
)

type linkRewriteFilter struct {
	mu      sync.Mutex
	origin  string
	pattern *regexp.Regexp
}

// NewLinkRewriteFilter replaces every case-insensitive occurrence of the
// origin URL in post_content with the target URL.
func NewLinkRewriteFilter() PostFilter {
	return &linkRewriteFilter{}
}

func (*linkRewriteFilter) Name() string { return "update_links" }

func (f *linkRewriteFilter) Apply(_ context.Context, conn models.ConnectionContext, post models.TransformedObject) (models.TransformedObject, error) {
	content, ok := post[models.FieldPostContent].(string)
	if !ok || content == "" || conn.OriginURL == "" {
		return post, nil
	}

	post[models.FieldPostContent] = f.originPattern(conn.OriginURL).ReplaceAllLiteralString(content, conn.Target.BaseURL)

	return post, nil
}

// originPattern compiles the matcher for origin once and reuses it until
// the origin changes.
func (f *linkRewriteFilter) originPattern(origin string) *regexp.Regexp {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pattern == nil || f.origin != origin {
		f.pattern = regexp.MustCompile("(?i)" + regexp.QuoteMeta(origin))
		f.origin = origin
	}

	return f.pattern
}

type orderItemsFilter struct {
	resolver RelationshipResolver
}

// NewOrderItemsFilter attaches the line items of shop orders, and their
// meta grouped by order item id, to meta_input.
func NewOrderItemsFilter(resolver RelationshipResolver) PostFilter {
	return &orderItemsFilter{resolver: resolver}
}

func (f *orderItemsFilter) Name() string { return "woo_order_items" }

func (f *orderItemsFilter) Apply(ctx context.Context, _ models.ConnectionContext, post models.TransformedObject) (models.TransformedObject, error) {
	if models.ValueString(post[models.FieldPostType]) != string(models.KindOrder) {
		return post, nil
	}

	meta := post.Meta()
	orderID := models.ValueInt64(meta[models.MetaPostID])

	items, itemMeta, err := f.resolver.OrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", orderID, err)
	}
	if items == nil {
		items = []models.Fields{}
	}

	meta[MetaOrderItems] = items
	if len(itemMeta) > 0 {
		meta[MetaOrderItemMeta] = itemMeta
	}

	return post, nil
}
