// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/models"
)

func newTestRemoteAdapter(t *testing.T, cfg config.Target) *httpRemoteAdapter {
	t.Helper()
	a := NewHTTPRemoteAdapter(cfg, logger.Nop())
	return a.(*httpRemoteAdapter)
}

// ── CheckStatus ──────────────────────────────────────────────────────────────

func TestCheckStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wp-json/press-sync/v1/status", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("press_sync_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	a := newTestRemoteAdapter(t, config.Target{})
	assert.True(t, a.CheckStatus(context.Background(), srv.URL+"/", "secret"))
}

func TestCheckStatus_False(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "success false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"success":false}`))
			},
		},
		{
			name: "success missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>maintenance</html>`))
			},
		},
		{
			name: "forbidden",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"success":true}`))
			},
		},
		{
			name: "created is not 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"success":true}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			a := newTestRemoteAdapter(t, config.Target{})
			assert.False(t, a.CheckStatus(context.Background(), srv.URL, "secret"))
		})
	}
}

func TestCheckStatus_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a := newTestRemoteAdapter(t, config.Target{RequestTimeout: 50 * time.Millisecond})
	assert.False(t, a.CheckStatus(context.Background(), srv.URL, "secret"))
}

func TestCheckStatus_EmptyURL(t *testing.T) {
	a := newTestRemoteAdapter(t, config.Target{})
	assert.False(t, a.CheckStatus(context.Background(), " / ", "secret"))
}

// ── Send ─────────────────────────────────────────────────────────────────────

func TestSend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wp-json/press-sync/v1/post", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("press_sync_key"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Hello", r.PostForm.Get("post_title"))
		assert.Equal(t, "42", r.PostForm.Get("meta_input[press_sync_post_id]"))
		assert.Equal(t, "News", r.PostForm.Get("tax_input[category][0]"))

		_, _ = w.Write([]byte(`{"status":"ignored"}`))
	}))
	defer srv.Close()

	a := newTestRemoteAdapter(t, config.Target{})
	err := a.Send(context.Background(), models.SyncTarget{BaseURL: srv.URL, AccessKey: "secret"}, "post", models.TransformedObject{
		"post_title": "Hello",
		"meta_input": map[string]any{"press_sync_post_id": int64(42)},
		"tax_input":  map[string][]string{"category": {"News"}},
	})

	require.NoError(t, err)
}

func TestSend_MapsStatus(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestRemoteAdapter(t, config.Target{})
			err := a.Send(context.Background(), models.SyncTarget{BaseURL: srv.URL}, "user", models.TransformedObject{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSend_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestRemoteAdapter(t, config.Target{})
	err := a.Send(context.Background(), models.SyncTarget{BaseURL: url}, "post", models.TransformedObject{})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestSend_RateLimited(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	a := newTestRemoteAdapter(t, config.Target{RequestsPerSecond: 0.001})
	target := models.SyncTarget{BaseURL: srv.URL}

	require.NoError(t, a.Send(context.Background(), target, "post", models.TransformedObject{}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := a.Send(ctx, target, "post", models.TransformedObject{})

	assert.ErrorIs(t, err, ErrThrottled)
	assert.Equal(t, int32(1), calls.Load(), "throttled send never reaches the server")
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "https://target.example/wp-json/press-sync/v1/status", StatusURL("https://target.example//"))
	assert.Equal(t, "https://target.example/wp-json/press-sync/v1/attachment", IngestURL("https://target.example/", "attachment"))
}
