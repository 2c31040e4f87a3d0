// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/models"
)

// receiver records every object POSTed to the ingest routes.
type receiver struct {
	mu    sync.Mutex
	posts []url.Values
	paths []string
	keys  []string
}

func (rc *receiver) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/wp-json/press-sync/v1/status" {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true}`)
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rc.mu.Lock()
	rc.posts = append(rc.posts, r.PostForm)
	rc.paths = append(rc.paths, r.URL.Path)
	rc.keys = append(rc.keys, r.URL.Query().Get("press_sync_key"))
	rc.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func newTestStack(t *testing.T, targetURL string) *Stack {
	t.Helper()

	var cfg config.StructuredConfig
	cfg.Source.DB = config.DB{Driver: store.DriverSQLite, DSN: ":memory:", TablePrefix: "wp_"}
	cfg.Source.SiteURL = "https://origin.example"
	cfg.Target.ConnectedServer = targetURL + "/"
	cfg.Target.PressSyncKey = "secret"
	cfg.Sync.ObjectsToSync = "post"
	cfg.Driver.InitSchema = true

	stack, err := NewStack(context.Background(), cfg, models.NewAppBuildInfo("v1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = stack.Close() })

	return stack
}

func TestNewStack_EndToEnd(t *testing.T) {
	rc := &receiver{}
	target := httptest.NewServer(rc)
	defer target.Close()

	stack := newTestStack(t, target.URL)
	ctx := context.Background()

	fixtures := []string{
		`INSERT INTO wp_posts (ID, post_title, post_content, post_parent, post_type, comment_count, guid) VALUES
			(1, 'Hello', '<a href="https://ORIGIN.example/about">About</a>', 0, 'post', 0, 'https://origin.example/?p=1'),
			(2, 'World', '', 0, 'post', 0, 'https://origin.example/?p=2')`,
		`INSERT INTO wp_terms (term_id, name, slug) VALUES (1, 'News', 'news')`,
		`INSERT INTO wp_term_taxonomy (term_taxonomy_id, term_id, taxonomy) VALUES (1, 1, 'category')`,
		`INSERT INTO wp_term_relationships (object_id, term_taxonomy_id) VALUES (1, 1)`,
	}
	for _, stmt := range fixtures {
		_, err := stack.db.ExecContext(ctx, stmt)
		require.NoError(t, err, stmt)
	}

	assert.True(t, stack.Services.ConnectionService.CheckConnection(ctx, ""))
	assert.Equal(t, "v1.0.0", stack.Services.AppInfoService.GetAppVersion(ctx))

	progress, err := stack.Services.SyncService.SyncPage(ctx, models.KindPost, 1)
	require.NoError(t, err)

	assert.EqualValues(t, 2, progress.TotalObjects)
	assert.Equal(t, 2, progress.ProcessedThisPage)
	assert.Equal(t, 2, progress.Sent)
	assert.True(t, progress.Done())

	rc.mu.Lock()
	defer rc.mu.Unlock()
	require.Len(t, rc.posts, 2)
	assert.Equal(t, []string{"/wp-json/press-sync/v1/post", "/wp-json/press-sync/v1/post"}, rc.paths)
	assert.Equal(t, []string{"secret", "secret"}, rc.keys)

	first := rc.posts[0]
	assert.Equal(t, "Hello", first.Get("post_title"))
	assert.Equal(t, `<a href="`+target.URL+`/about">About</a>`, first.Get("post_content"))
	assert.Equal(t, "1", first.Get("meta_input[press_sync_post_id]"))
	assert.Equal(t, "https://origin.example", first.Get("meta_input[press_sync_source]"))
	assert.Equal(t, "News", first.Get("tax_input[category][0]"))
	assert.Empty(t, first.Get("ID"))
}

func TestNewStack_UnsupportedDriver(t *testing.T) {
	var cfg config.StructuredConfig
	cfg.Source.DB = config.DB{Driver: "oracle", DSN: "x"}

	stack, err := NewStack(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, store.ErrUnsupportedDriver)
	assert.Nil(t, stack)
}

func TestNewStack_SchemaNeedsDefaultPrefix(t *testing.T) {
	var cfg config.StructuredConfig
	cfg.Source.DB = config.DB{Driver: store.DriverSQLite, DSN: ":memory:", TablePrefix: "site_"}
	cfg.Driver.InitSchema = true

	stack, err := NewStack(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, store.ErrUnsupportedSchema)
	assert.Nil(t, stack)
}
