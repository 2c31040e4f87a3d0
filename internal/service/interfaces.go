// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the sync pipeline of press-sync: resolving both
// ends of a connection, counting and fetching pages of source objects,
// resolving their relationships, transforming them into the wire shape of
// the receiving endpoint and driving page calls.
package service

import (
	"context"

	"github.com/MKhiriev/go-press-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConnectionService resolves and probes both ends of a sync.
type ConnectionService interface {
	// CheckConnection probes the receiving site at url, or the configured
	// one when url is empty, with the configured key.
	CheckConnection(ctx context.Context, url string) bool

	// ResolveContext builds the origin URL, origin GMT offset and target of
	// a page call.
	ResolveContext(ctx context.Context) (models.ConnectionContext, error)
}

// CounterService counts source objects for progress reporting.
type CounterService interface {
	CountObjects(ctx context.Context, kind models.ObjectKind) (int64, error)
}

// FetcherService reads one page of source objects.
type FetcherService interface {
	// FetchPage returns at most [models.PageSize] objects of kind. Empty
	// taxonomies means every taxonomy used by the kind.
	FetchPage(ctx context.Context, conn models.ConnectionContext, kind models.ObjectKind, page int, taxonomies []string) ([]models.RawObject, error)
}

// RelationshipResolver loads data associated with an object that is not on
// its own row.
type RelationshipResolver interface {
	// GetRelationships maps each of taxonomies to the names of the terms
	// assigned to objectID.
	GetRelationships(ctx context.Context, objectID int64, taxonomies []string) (map[string][]string, error)

	// FeaturedImage returns the media row of thumbnailID with an
	// attachment_url built from originURL. ok is false when the media row
	// does not exist.
	FeaturedImage(ctx context.Context, originURL string, thumbnailID int64) (media models.Fields, ok bool, err error)

	// PostComments returns the approved and pending comments of postID,
	// newest first.
	PostComments(ctx context.Context, postID int64) ([]models.Fields, error)

	// OrderItems returns the line items of orderID and their meta rows
	// grouped by order item id.
	OrderItems(ctx context.Context, orderID int64) ([]models.Fields, map[string]any, error)

	// Connections returns the legacy connection rows touching postID.
	// available is false when the connections table is not installed.
	Connections(ctx context.Context, postID int64) (connections []models.Fields, available bool, err error)
}

// Transformer maps a fetched object to its wire representation.
type Transformer interface {
	Transform(ctx context.Context, conn models.ConnectionContext, raw models.RawObject) (models.TransformedObject, error)
}

// PostFilter is one stage of the post transform pipeline. Stages run in
// registration order, after the link rewrite, on a copy owned by the
// pipeline.
type PostFilter interface {
	Name() string
	Apply(ctx context.Context, conn models.ConnectionContext, post models.TransformedObject) (models.TransformedObject, error)
}

// SyncService is the page orchestrator.
type SyncService interface {
	// SyncPage fetches, transforms and sends page of kind. An empty kind
	// selects the configured default.
	SyncPage(ctx context.Context, kind models.ObjectKind, page int) (models.SyncProgress, error)

	// CountPage reports the total number of objects of kind with its label.
	CountPage(ctx context.Context, kind models.ObjectKind) (models.CountResult, error)
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
