// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/models"
)

const metaThumbnailID = "_thumbnail_id"

// commentFields is the whitelist of comment columns sent to the receiving
// site, in wire order.
var commentFields = []string{
	"comment_post_ID",
	"comment_author",
	"comment_author_email",
	"comment_author_url",
	"comment_author_IP",
	"comment_date",
	"comment_date_gmt",
	"comment_content",
	"comment_karma",
	"comment_approved",
	"comment_agent",
	"comment_type",
	"comment_parent",
	"user_id",
}

type transformer struct {
	resolver RelationshipResolver

	// pipeline always starts with the link rewrite.
	pipeline []PostFilter

	logger *logger.Logger
}

// NewTransformer builds the per-kind transformer. filters run on content
// objects after the link rewrite, in the given order.
func NewTransformer(resolver RelationshipResolver, logger *logger.Logger, filters ...PostFilter) Transformer {
	pipeline := make([]PostFilter, 0, len(filters)+1)
	pipeline = append(pipeline, NewLinkRewriteFilter())
	pipeline = append(pipeline, filters...)

	return &transformer{
		resolver: resolver,
		pipeline: pipeline,
		logger:   logger,
	}
}

func (t *transformer) Transform(ctx context.Context, conn models.ConnectionContext, raw models.RawObject) (models.TransformedObject, error) {
	switch raw.Kind.Class() {
	case models.ClassAttachment:
		return transformAttachment(conn, raw), nil
	case models.ClassComment:
		return transformComment(conn, raw.Fields), nil
	case models.ClassUser:
		return transformUser(raw), nil
	default:
		return t.transformPost(ctx, conn, raw)
	}
}

func (t *transformer) transformPost(ctx context.Context, conn models.ConnectionContext, raw models.RawObject) (models.TransformedObject, error) {
	id := raw.ID()
	post := models.TransformedObject(raw.Fields.Clone())

	meta := make(map[string]any, len(raw.Meta)+3)
	for key, value := range raw.Meta {
		meta[key] = flattenMeta(value)
	}
	setDefault(meta, models.MetaPostID, id)
	setDefault(meta, models.MetaSource, conn.OriginURL)
	setDefault(meta, models.MetaGMTOffset, conn.GMTOffset)
	post[models.FieldMetaInput] = meta

	if raw.TaxonomyTerms != nil {
		taxInput := make(map[string][]string, len(raw.TaxonomyTerms))
		for taxonomy, names := range raw.TaxonomyTerms {
			taxInput[taxonomy] = append([]string{}, names...)
		}
		post[models.FieldTaxInput] = taxInput
	}

	var err error
	for _, filter := range t.pipeline {
		post, err = filter.Apply(ctx, conn, post)
		if err != nil {
			return nil, fmt.Errorf("%s filter on post %d: %w", filter.Name(), id, err)
		}
	}

	if thumbnailID := models.ValueInt64(post.Meta()[metaThumbnailID]); thumbnailID > 0 {
		media, ok, err := t.resolver.FeaturedImage(ctx, conn.OriginURL, thumbnailID)
		if err != nil {
			return nil, fmt.Errorf("featured image of post %d: %w", id, err)
		}
		if ok {
			post[models.FieldFeaturedImage] = media
		}
	}

	if models.ValueInt64(post[models.FieldCommentCount]) > 0 {
		rows, err := t.resolver.PostComments(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("comments of post %d: %w", id, err)
		}
		if len(rows) > 0 {
			comments := make([]models.TransformedObject, 0, len(rows))
			for _, row := range rows {
				comments = append(comments, transformComment(conn, row))
			}
			post[models.FieldComments] = comments
		}
	}

	connections, available, err := t.resolver.Connections(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("connections of post %d: %w", id, err)
	}
	if available {
		post[models.FieldP2PConnections] = connections
	}

	delete(post, models.FieldID)

	return post, nil
}

// transformAttachment keeps only what the receiving site needs to sideload
// the file.
func transformAttachment(conn models.ConnectionContext, raw models.RawObject) models.TransformedObject {
	return models.TransformedObject{
		"post_date":               raw.Fields["post_date"],
		"post_title":              raw.Fields["post_title"],
		"post_name":               raw.Fields["post_name"],
		models.FieldAttachmentURL: raw.Fields[models.FieldGUID],
		models.FieldMetaInput: map[string]any{
			models.MetaPostID: raw.ID(),
			models.MetaSource: conn.OriginURL,
		},
	}
}

func transformComment(conn models.ConnectionContext, fields models.Fields) models.TransformedObject {
	comment := make(models.TransformedObject, len(commentFields)+1)
	for _, name := range commentFields {
		comment[name] = fields[name]
	}
	comment[models.FieldMetaInput] = map[string]any{
		models.MetaCommentID: fields["comment_ID"],
		models.MetaPostID:    fields["comment_post_ID"],
		models.MetaSource:    conn.OriginURL,
	}

	return comment
}

func transformUser(raw models.RawObject) models.TransformedObject {
	user := models.TransformedObject(raw.Fields.Clone())
	user[models.FieldMetaInput] = map[string]any(models.Fields(raw.Meta).Clone())
	user[models.FieldUserPass] = nil

	return user
}

// flattenMeta keeps the first stored value of a multi-valued meta key.
func flattenMeta(value any) any {
	switch v := value.(type) {
	case []string:
		return firstString(v)
	case []any:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	default:
		return v
	}
}

func setDefault(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}
