// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the migration driver: a loop that requests one page
// at a time until the source kind is exhausted.
package workers

import (
	"context"

	"github.com/MKhiriev/go-press-sync/models"
)

// Worker is a unit of blocking background work.
type Worker interface {
	Run(ctx context.Context) error
}

// PageSyncer processes one page of one kind. Both the in-process sync
// service and the HTTP API adapter satisfy it.
type PageSyncer interface {
	SyncPage(ctx context.Context, kind models.ObjectKind, page int) (models.SyncProgress, error)
}
