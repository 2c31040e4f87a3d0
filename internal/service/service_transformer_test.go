// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver serves canned relationships and records what was asked.
type stubResolver struct {
	media       models.Fields
	comments    []models.Fields
	items       []models.Fields
	itemMeta    map[string]any
	connections []models.Fields
	p2p         bool
	err         error

	orderCalls   []int64
	commentCalls int
}

func (s *stubResolver) GetRelationships(_ context.Context, _ int64, _ []string) (map[string][]string, error) {
	return map[string][]string{}, s.err
}

func (s *stubResolver) FeaturedImage(_ context.Context, originURL string, _ int64) (models.Fields, bool, error) {
	if s.err != nil || s.media == nil {
		return nil, false, s.err
	}
	media := s.media.Clone()
	media[models.FieldAttachmentURL] = originURL + "/wp-content/uploads/file.jpg"
	return media, true, nil
}

func (s *stubResolver) PostComments(_ context.Context, _ int64) ([]models.Fields, error) {
	s.commentCalls++
	return s.comments, s.err
}

func (s *stubResolver) OrderItems(_ context.Context, orderID int64) ([]models.Fields, map[string]any, error) {
	s.orderCalls = append(s.orderCalls, orderID)
	return s.items, s.itemMeta, s.err
}

func (s *stubResolver) Connections(_ context.Context, _ int64) ([]models.Fields, bool, error) {
	return s.connections, s.p2p, nil
}

func rawPost(id int64, fields models.Fields, meta map[string]any) models.RawObject {
	f := models.Fields{"ID": id, "post_type": "post", "comment_count": "0"}
	for k, v := range fields {
		f[k] = v
	}
	m := map[string]any{
		models.MetaPostID:    id,
		models.MetaSource:    testConn.OriginURL,
		models.MetaGMTOffset: testConn.GMTOffset,
	}
	for k, v := range meta {
		m[k] = v
	}
	return models.RawObject{Kind: models.ObjectKind(f.String("post_type")), Fields: f, Meta: m}
}

// ── posts ────────────────────────────────────────────────────────────────────

func TestTransformer_Post_TaxonomiesWithoutThumbnailOrComments(t *testing.T) {
	tr := NewTransformer(&stubResolver{}, logger.Nop())
	raw := rawPost(42, nil, nil)
	raw.TaxonomyTerms = map[string][]string{"category": {"News", "Tech"}}

	got, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"category": {"News", "Tech"}}, got[models.FieldTaxInput])
	assert.NotContains(t, got, models.FieldFeaturedImage)
	assert.NotContains(t, got, models.FieldComments)
	assert.NotContains(t, got, models.FieldP2PConnections)
	assert.NotContains(t, got, models.FieldID)
	assert.Equal(t, int64(42), got.Meta()[models.MetaPostID])
	assert.Equal(t, "https://origin.example", got.Meta()[models.MetaSource])
	assert.Equal(t, "2", got.Meta()[models.MetaGMTOffset])
}

func TestTransformer_Post_FlattensMeta(t *testing.T) {
	tr := NewTransformer(&stubResolver{}, logger.Nop())
	raw := rawPost(1, nil, map[string]any{
		"color": []string{"red", "blue"},
		"empty": []string{},
		"plain": "value",
	})

	got, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	meta := got.Meta()
	assert.Equal(t, "red", meta["color"])
	assert.Equal(t, "", meta["empty"])
	assert.Equal(t, "value", meta["plain"])
}

func TestTransformer_Post_ProvenanceWithoutFetcherMeta(t *testing.T) {
	tr := NewTransformer(&stubResolver{}, logger.Nop())
	raw := models.RawObject{Kind: models.KindPage, Fields: models.Fields{"ID": int64(5), "post_type": "page"}}

	got, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Meta()[models.MetaPostID])
	assert.Equal(t, testConn.OriginURL, got.Meta()[models.MetaSource])
}

func TestTransformer_Post_RewritesLinks(t *testing.T) {
	tests := []struct {
		name    string
		content any
		want    any
	}{
		{"single", `<a href="https://origin.example/about">`, `<a href="https://target.example/about">`},
		{"case insensitive", "HTTPS://ORIGIN.EXAMPLE/x and https://Origin.Example/y", "https://target.example/x and https://target.example/y"},
		{"no occurrence", "https://elsewhere.example", "https://elsewhere.example"},
		{"regexp characters are literal", "https://originXexample/", "https://originXexample/"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransformer(&stubResolver{}, logger.Nop())
			raw := rawPost(1, models.Fields{models.FieldPostContent: tt.content}, nil)

			got, err := tr.Transform(context.Background(), testConn, raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got[models.FieldPostContent])
		})
	}
}

func TestTransformer_Post_FeaturedImage(t *testing.T) {
	resolver := &stubResolver{media: models.Fields{"ID": int64(7), "post_title": "Cat"}}
	tr := NewTransformer(resolver, logger.Nop())
	raw := rawPost(1, nil, map[string]any{metaThumbnailID: []string{"7"}})

	got, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	media, ok := got[models.FieldFeaturedImage].(models.Fields)
	require.True(t, ok)
	assert.Equal(t, "Cat", media["post_title"])
	assert.Equal(t, "https://origin.example/wp-content/uploads/file.jpg", media[models.FieldAttachmentURL])
}

func TestTransformer_Post_MissingMediaOmitsFeaturedImage(t *testing.T) {
	tr := NewTransformer(&stubResolver{}, logger.Nop())
	raw := rawPost(1, nil, map[string]any{metaThumbnailID: []string{"99"}})

	got, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	assert.NotContains(t, got, models.FieldFeaturedImage)
}

func TestTransformer_Post_Comments(t *testing.T) {
	resolver := &stubResolver{comments: []models.Fields{
		{"comment_ID": int64(3), "comment_post_ID": int64(1), "comment_content": "Nice", "comment_approved": "1"},
	}}
	tr := NewTransformer(resolver, logger.Nop())
	raw := rawPost(1, models.Fields{models.FieldCommentCount: "1"}, nil)

	got, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	comments, ok := got[models.FieldComments].([]models.TransformedObject)
	require.True(t, ok)
	require.Len(t, comments, 1)
	assert.Equal(t, "Nice", comments[0]["comment_content"])
	assert.Equal(t, int64(3), comments[0].Meta()[models.MetaCommentID])
}

func TestTransformer_Post_ZeroCommentCountSkipsLookup(t *testing.T) {
	resolver := &stubResolver{comments: []models.Fields{{"comment_ID": int64(3)}}}
	tr := NewTransformer(resolver, logger.Nop())

	got, err := tr.Transform(context.Background(), testConn, rawPost(1, nil, nil))

	require.NoError(t, err)
	assert.Zero(t, resolver.commentCalls)
	assert.NotContains(t, got, models.FieldComments)
}

func TestTransformer_Post_Connections(t *testing.T) {
	resolver := &stubResolver{p2p: true, connections: []models.Fields{{"p2p_from": int64(1), "p2p_to": int64(2)}}}
	tr := NewTransformer(resolver, logger.Nop())

	got, err := tr.Transform(context.Background(), testConn, rawPost(1, nil, nil))

	require.NoError(t, err)
	assert.Equal(t, resolver.connections, got[models.FieldP2PConnections])
}

func TestTransformer_Post_ResolverError(t *testing.T) {
	dbErr := errors.New("gone away")
	tr := NewTransformer(&stubResolver{err: dbErr}, logger.Nop())
	raw := rawPost(1, nil, map[string]any{metaThumbnailID: "7"})

	_, err := tr.Transform(context.Background(), testConn, raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestTransformer_Post_DoesNotMutateInput(t *testing.T) {
	tr := NewTransformer(&stubResolver{}, logger.Nop())
	raw := rawPost(1, models.Fields{models.FieldPostContent: "see https://origin.example"}, map[string]any{"color": []string{"red", "blue"}})
	raw.TaxonomyTerms = map[string][]string{"category": {"News"}}

	first, err := tr.Transform(context.Background(), testConn, raw)
	require.NoError(t, err)
	second, err := tr.Transform(context.Background(), testConn, raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "see https://origin.example", raw.Fields[models.FieldPostContent])
	assert.Equal(t, int64(1), raw.Fields[models.FieldID])
	assert.Equal(t, []string{"red", "blue"}, raw.Meta["color"])
}

// ── filters ──────────────────────────────────────────────────────────────────

type recordingFilter struct {
	name  string
	calls *[]string
}

func (f recordingFilter) Name() string { return f.name }

func (f recordingFilter) Apply(_ context.Context, _ models.ConnectionContext, post models.TransformedObject) (models.TransformedObject, error) {
	*f.calls = append(*f.calls, f.name+":"+models.ValueString(post[models.FieldPostContent]))
	return post, nil
}

func TestTransformer_FiltersRunAfterLinkRewriteInOrder(t *testing.T) {
	var calls []string
	tr := NewTransformer(&stubResolver{}, logger.Nop(),
		recordingFilter{name: "first", calls: &calls},
		recordingFilter{name: "second", calls: &calls},
	)
	raw := rawPost(1, models.Fields{models.FieldPostContent: "https://origin.example"}, nil)

	_, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"first:https://target.example", "second:https://target.example"}, calls)
}

type failingFilter struct{ err error }

func (failingFilter) Name() string { return "failing" }

func (f failingFilter) Apply(context.Context, models.ConnectionContext, models.TransformedObject) (models.TransformedObject, error) {
	return nil, f.err
}

func TestTransformer_FilterError(t *testing.T) {
	filterErr := errors.New("filter broke")
	tr := NewTransformer(&stubResolver{}, logger.Nop(), failingFilter{err: filterErr})

	_, err := tr.Transform(context.Background(), testConn, rawPost(1, nil, nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, filterErr)
	assert.Contains(t, err.Error(), "failing filter")
}

func TestOrderItemsFilter(t *testing.T) {
	t.Run("shop order", func(t *testing.T) {
		resolver := &stubResolver{
			items:    []models.Fields{{"order_item_id": int64(11)}},
			itemMeta: map[string]any{"11": []models.Fields{{"meta_key": "_qty"}}},
		}
		tr := NewTransformer(resolver, logger.Nop(), NewOrderItemsFilter(resolver))
		raw := rawPost(100, models.Fields{models.FieldPostType: "shop_order"}, nil)

		got, err := tr.Transform(context.Background(), testConn, raw)

		require.NoError(t, err)
		assert.Equal(t, []int64{100}, resolver.orderCalls)
		assert.Equal(t, resolver.items, got.Meta()[MetaOrderItems])
		assert.Equal(t, resolver.itemMeta, got.Meta()[MetaOrderItemMeta])
	})

	t.Run("order without items", func(t *testing.T) {
		resolver := &stubResolver{}
		tr := NewTransformer(resolver, logger.Nop(), NewOrderItemsFilter(resolver))
		raw := rawPost(101, models.Fields{models.FieldPostType: "shop_order"}, nil)

		got, err := tr.Transform(context.Background(), testConn, raw)

		require.NoError(t, err)
		assert.Equal(t, []models.Fields{}, got.Meta()[MetaOrderItems])
		assert.NotContains(t, got.Meta(), MetaOrderItemMeta)
	})

	t.Run("other content type", func(t *testing.T) {
		resolver := &stubResolver{items: []models.Fields{{"order_item_id": int64(11)}}}
		tr := NewTransformer(resolver, logger.Nop(), NewOrderItemsFilter(resolver))

		got, err := tr.Transform(context.Background(), testConn, rawPost(100, nil, nil))

		require.NoError(t, err)
		assert.Empty(t, resolver.orderCalls)
		assert.NotContains(t, got.Meta(), MetaOrderItems)
	})
}

// ── attachments, comments, users ─────────────────────────────────────────────

func TestTransformer_Attachment(t *testing.T) {
	tr := NewTransformer(&stubResolver{}, logger.Nop())
	raw := models.RawObject{
		Kind: models.KindAttachment,
		Fields: models.Fields{
			"ID":          int64(7),
			"post_date":   "2024-01-02 03:04:05",
			"post_title":  "Cat",
			"post_name":   "cat",
			"guid":        "https://origin.example/wp-content/uploads/cat.jpg",
			"post_author": "1",
		},
		Meta: map[string]any{"_wp_attached_file": []string{"cat.jpg"}},
	}

	got, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	assert.Equal(t, models.TransformedObject{
		"post_date":      "2024-01-02 03:04:05",
		"post_title":     "Cat",
		"post_name":      "cat",
		"attachment_url": "https://origin.example/wp-content/uploads/cat.jpg",
		"meta_input": map[string]any{
			models.MetaPostID: int64(7),
			models.MetaSource: "https://origin.example",
		},
	}, got)
}

func TestTransformer_Comment(t *testing.T) {
	tr := NewTransformer(&stubResolver{}, logger.Nop())
	fields := models.Fields{
		"comment_ID":      int64(3),
		"comment_post_ID": int64(42),
		"comment_author":  "Bob",
		"comment_content": "Hi",
		"user_id":         int64(0),
		"not_whitelisted": "x",
	}

	got, err := tr.Transform(context.Background(), testConn, models.RawObject{Kind: models.KindComment, Fields: fields})

	require.NoError(t, err)
	assert.Len(t, got, len(commentFields)+1)
	assert.Equal(t, "Bob", got["comment_author"])
	assert.Equal(t, int64(42), got["comment_post_ID"])
	assert.NotContains(t, got, "not_whitelisted")
	assert.NotContains(t, got, "comment_ID")
	assert.Equal(t, map[string]any{
		models.MetaCommentID: int64(3),
		models.MetaPostID:    int64(42),
		models.MetaSource:    "https://origin.example",
	}, got[models.FieldMetaInput])
}

func TestTransformer_User(t *testing.T) {
	tr := NewTransformer(&stubResolver{}, logger.Nop())
	raw := models.RawObject{
		Kind:   models.KindUser,
		Fields: models.Fields{"user_login": "alice", "user_pass": "$P$secret", "role": "editor"},
		Meta:   map[string]any{"nickname": "Al", models.MetaUserID: int64(9)},
	}

	got, err := tr.Transform(context.Background(), testConn, raw)

	require.NoError(t, err)
	assert.Nil(t, got[models.FieldUserPass])
	assert.Equal(t, "alice", got["user_login"])
	assert.Equal(t, "editor", got[models.FieldRole])
	assert.Equal(t, int64(9), got.Meta()[models.MetaUserID])
	assert.Equal(t, "$P$secret", raw.Fields["user_pass"])
}
