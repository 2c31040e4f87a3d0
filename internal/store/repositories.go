// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-press-sync/internal/logger"
)

// Repositories aggregates every read-only repository of the source database.
type Repositories struct {
	PostRepository       PostRepository
	UserRepository       UserRepository
	CommentRepository    CommentRepository
	TermRepository       TermRepository
	OptionRepository     OptionRepository
	OrderItemRepository  OrderItemRepository
	ConnectionRepository ConnectionRepository
	SchemaInspector      SchemaInspector

	tables Tables
}

// NewRepositories builds every repository over db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		PostRepository:       NewPostRepository(db, logger),
		UserRepository:       NewUserRepository(db, logger),
		CommentRepository:    NewCommentRepository(db, logger),
		TermRepository:       NewTermRepository(db, logger),
		OptionRepository:     NewOptionRepository(db, logger),
		OrderItemRepository:  NewOrderItemRepository(db, logger),
		ConnectionRepository: NewConnectionRepository(db, logger),
		SchemaInspector:      NewSchemaInspector(db, logger),
		tables:               db.tables,
	}
}

// Tables returns the prefixed table names the repositories read.
func (r *Repositories) Tables() Tables {
	return r.tables
}
