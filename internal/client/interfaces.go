// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-press-sync/internal/workers"
	"github.com/MKhiriev/go-press-sync/models"
)

// Client defines the lifecycle contract of runnable client applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// PageSource processes pages for the driver. adapter.SyncAPIAdapter
// satisfies it directly; NewLocalSource adapts the in-process services.
type PageSource interface {
	workers.PageSyncer

	CheckConnection(ctx context.Context) (bool, error)
	Count(ctx context.Context, kind models.ObjectKind) (models.CountResult, error)
}
