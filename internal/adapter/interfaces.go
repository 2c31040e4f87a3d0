// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound HTTP transports of press-sync.
//
// [RemoteAdapter] talks to the press-sync REST endpoint of the receiving
// installation: the status probe and the per-object ingest POST.
// [SyncAPIAdapter] lets the migration driver call a running press-sync server
// instead of syncing in-process.
//
// Non-2xx responses are mapped to the sentinel values defined in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-press-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteAdapter is the client side of the receiving installation's
// press-sync endpoint.
type RemoteAdapter interface {
	// CheckStatus probes <baseURL>/wp-json/press-sync/v1/status with key and
	// reports true only for HTTP 200 with a JSON body whose "success" is
	// true. Transport failures, other statuses and malformed bodies all
	// yield false. It never retries.
	CheckStatus(ctx context.Context, baseURL, key string) bool

	// Send POSTs obj form-encoded to
	// <target.BaseURL>/wp-json/press-sync/v1/<path>. The response body is
	// discarded; a non-2xx status or a transport failure is returned as an
	// error. It never retries.
	Send(ctx context.Context, target models.SyncTarget, path string, obj models.TransformedObject) error
}

// SyncAPIAdapter is the client side of the page-driving API served by
// cmd/server.
type SyncAPIAdapter interface {
	// CheckConnection asks the server whether its configured target is
	// reachable.
	CheckConnection(ctx context.Context) (bool, error)

	// Count returns the total number of objects of kind. An empty kind
	// selects the server's configured default.
	Count(ctx context.Context, kind models.ObjectKind) (models.CountResult, error)

	// SyncPage makes the server process one page of kind.
	SyncPage(ctx context.Context, kind models.ObjectKind, page int) (models.SyncProgress, error)
}
