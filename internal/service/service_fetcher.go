// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/models"
)

// capabilitiesMetaKey is the user meta key, after the table prefix, that
// holds the serialized role map.
const capabilitiesMetaKey = "capabilities"

// userRolesOption is the option, after the table prefix, that holds the
// serialized map of registered roles.
const userRolesOption = "user_roles"

type fetcherService struct {
	posts    store.PostRepository
	users    store.UserRepository
	comments store.CommentRepository
	resolver RelationshipResolver
	taxonomy store.TermRepository
	options  store.OptionRepository

	tablePrefix string

	logger *logger.Logger
}

func NewFetcherService(
	posts store.PostRepository,
	users store.UserRepository,
	comments store.CommentRepository,
	taxonomy store.TermRepository,
	options store.OptionRepository,
	resolver RelationshipResolver,
	tablePrefix string,
	logger *logger.Logger,
) FetcherService {
	return &fetcherService{
		posts:       posts,
		users:       users,
		comments:    comments,
		resolver:    resolver,
		taxonomy:    taxonomy,
		options:     options,
		tablePrefix: tablePrefix,
		logger:      logger,
	}
}

func (f *fetcherService) FetchPage(ctx context.Context, conn models.ConnectionContext, kind models.ObjectKind, page int, taxonomies []string) ([]models.RawObject, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	offset := uint64(page-1) * models.PageSize

	switch kind.Class() {
	case models.ClassUser:
		return f.fetchUsers(ctx, conn, offset)
	case models.ClassComment:
		return f.fetchComments(ctx, offset)
	default:
		return f.fetchPosts(ctx, conn, kind, offset, taxonomies)
	}
}

func (f *fetcherService) fetchPosts(ctx context.Context, conn models.ConnectionContext, kind models.ObjectKind, offset uint64, taxonomies []string) ([]models.RawObject, error) {
	rows, err := f.posts.FindPage(ctx, string(kind), models.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch %s page: %w", kind, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	if len(taxonomies) == 0 {
		taxonomies, err = f.taxonomy.FindTaxonomiesByPostType(ctx, string(kind))
		if err != nil {
			return nil, fmt.Errorf("discover taxonomies of %s: %w", kind, err)
		}
	}

	objects := make([]models.RawObject, 0, len(rows))
	for _, row := range rows {
		id := row.Int64(models.FieldID)

		terms, err := f.resolver.GetRelationships(ctx, id, taxonomies)
		if err != nil {
			return nil, fmt.Errorf("terms of %s %d: %w", kind, id, err)
		}

		stored, err := f.posts.FindMeta(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("meta of %s %d: %w", kind, id, err)
		}

		meta := make(map[string]any, len(stored)+3)
		for key, values := range stored {
			meta[key] = values
		}
		meta[models.MetaPostID] = id
		meta[models.MetaSource] = conn.OriginURL
		meta[models.MetaGMTOffset] = conn.GMTOffset

		objects = append(objects, models.RawObject{
			Kind:          kind,
			Fields:        row,
			Meta:          meta,
			TaxonomyTerms: terms,
		})
	}

	return objects, nil
}

func (f *fetcherService) fetchComments(ctx context.Context, offset uint64) ([]models.RawObject, error) {
	rows, err := f.comments.FindPage(ctx, models.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch comment page: %w", err)
	}

	objects := make([]models.RawObject, 0, len(rows))
	for _, row := range rows {
		objects = append(objects, models.RawObject{Kind: models.KindComment, Fields: row})
	}

	return objects, nil
}

// fetchUsers keeps the first value of every meta key, lifts the primary
// role to a top-level field and drops the native ID.
func (f *fetcherService) fetchUsers(ctx context.Context, conn models.ConnectionContext, offset uint64) ([]models.RawObject, error) {
	rows, err := f.users.FindPage(ctx, models.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch user page: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	roles, err := f.loadRoles(ctx)
	if err != nil {
		return nil, err
	}

	objects := make([]models.RawObject, 0, len(rows))
	for _, row := range rows {
		id := row.Int64(models.FieldID)

		stored, err := f.users.FindMeta(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("meta of user %d: %w", id, err)
		}

		meta := make(map[string]any, len(stored)+2)
		for key, values := range stored {
			meta[key] = firstString(values)
		}
		meta[models.MetaUserID] = id
		meta[models.MetaSource] = conn.OriginURL

		fields := row.Clone()
		delete(fields, models.FieldID)
		fields[models.FieldRole] = primaryRole(firstString(stored[f.tablePrefix+capabilitiesMetaKey]), roles)

		objects = append(objects, models.RawObject{
			Kind:   models.KindUser,
			Fields: fields,
			Meta:   meta,
		})
	}

	return objects, nil
}

// loadRoles reads the role names of the source site. A missing or
// unreadable option yields nil, and roles then fall back to granted keys.
func (f *fetcherService) loadRoles(ctx context.Context) (map[string]struct{}, error) {
	raw, err := f.options.GetOption(ctx, f.tablePrefix+userRolesOption)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read registered roles: %w", err)
	}

	roles := registeredRoles(raw)
	if roles == nil {
		logger.FromContext(ctx).Warn().Str("func", "fetcherService.loadRoles").Msg("user roles option is not a serialized array, using granted capabilities")
	}

	return roles, nil
}

func firstString(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[0]
}
