// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	c1 := NewHTTPClient()
	c2 := NewHTTPClient()

	assert.NotSame(t, c1.Client, c2.Client)
}

func TestNewHTTPClient_Headers(t *testing.T) {
	tests := []struct {
		name        string
		ctx         context.Context
		wantTraceID string
	}{
		{
			name:        "trace id forwarded",
			ctx:         SetTraceIDToContext(context.Background(), "trace-42"),
			wantTraceID: "trace-42",
		},
		{
			name:        "no trace id in context",
			ctx:         context.Background(),
			wantTraceID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTraceID, gotUserAgent string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotTraceID = r.Header.Get(TraceIDHeader)
				gotUserAgent = r.Header.Get("User-Agent")
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			resp, err := NewHTTPClient().R().SetContext(tt.ctx).Get(srv.URL)

			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, resp.StatusCode())
			assert.Equal(t, tt.wantTraceID, gotTraceID)
			assert.Equal(t, UserAgent, gotUserAgent)
		})
	}
}
