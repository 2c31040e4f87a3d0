// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/models"
)

type counterService struct {
	posts    store.PostRepository
	users    store.UserRepository
	comments store.CommentRepository

	logger *logger.Logger
}

func NewCounterService(posts store.PostRepository, users store.UserRepository, comments store.CommentRepository, logger *logger.Logger) CounterService {
	return &counterService{
		posts:    posts,
		users:    users,
		comments: comments,
		logger:   logger,
	}
}

// CountObjects counts every object of kind regardless of status.
func (c *counterService) CountObjects(ctx context.Context, kind models.ObjectKind) (int64, error) {
	var (
		total int64
		err   error
	)

	switch kind.Class() {
	case models.ClassUser:
		total, err = c.users.Count(ctx)
	case models.ClassComment:
		total, err = c.comments.Count(ctx)
	default:
		total, err = c.posts.CountByType(ctx, string(kind))
	}
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}

	return total, nil
}
