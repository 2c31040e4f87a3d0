// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-press-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassification indicates whether a failed database operation may
// succeed if attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default classification: constraint, syntax and
	// unknown errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures (lost connection, deadlock).
	Retryable
)

// ErrorClassificator classifies driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// NewErrorClassifier returns the classifier of the named driver.
func NewErrorClassifier(driver string) ErrorClassificator {
	switch driver {
	case DriverPostgres:
		return NewPostgresErrorClassifier()
	case DriverSQLite:
		return NewSQLiteErrorClassifier()
	default:
		return NewMySQLErrorClassifier()
	}
}

// PostRepository reads the posts and postmeta tables. Every content type,
// attachments and orders live there.
type PostRepository interface {
	CountByType(ctx context.Context, postType string) (int64, error)
	FindPage(ctx context.Context, postType string, limit, offset uint64) ([]models.Fields, error)
	FindByID(ctx context.Context, id int64) (models.Fields, error)
	FindMeta(ctx context.Context, postID int64) (map[string][]string, error)
}

// UserRepository reads the users and usermeta tables.
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, limit, offset uint64) ([]models.Fields, error)
	FindMeta(ctx context.Context, userID int64) (map[string][]string, error)
}

// CommentRepository reads the comments table.
type CommentRepository interface {
	Count(ctx context.Context) (int64, error)
	FindPage(ctx context.Context, limit, offset uint64) ([]models.Fields, error)
	FindByPost(ctx context.Context, postID int64, statuses []string) ([]models.Fields, error)
}

// TermRepository reads the taxonomy tables.
type TermRepository interface {
	FindTaxonomiesByPostType(ctx context.Context, postType string) ([]string, error)
	FindTermNames(ctx context.Context, objectID int64, taxonomies []string) (map[string][]string, error)
}

// OptionRepository reads site options.
type OptionRepository interface {
	GetOption(ctx context.Context, name string) (string, error)
}

// OrderItemRepository reads the e-commerce order item tables.
type OrderItemRepository interface {
	FindItems(ctx context.Context, orderID int64) ([]models.Fields, error)
	FindItemMeta(ctx context.Context, orderItemID int64) ([]models.Fields, error)
}

// ConnectionRepository reads legacy post-to-post connections.
type ConnectionRepository interface {
	FindConnections(ctx context.Context, postID int64) ([]models.Fields, error)
}

// SchemaInspector probes optional plugin tables.
type SchemaInspector interface {
	TableExists(ctx context.Context, table string) (bool, error)
}
