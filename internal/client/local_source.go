// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-press-sync/internal/service"
	"github.com/MKhiriev/go-press-sync/models"
)

type localSource struct {
	services *service.Services
}

// NewLocalSource runs pages in-process with services.
func NewLocalSource(services *service.Services) PageSource {
	return &localSource{services: services}
}

func (s *localSource) CheckConnection(ctx context.Context) (bool, error) {
	return s.services.ConnectionService.CheckConnection(ctx, ""), nil
}

func (s *localSource) Count(ctx context.Context, kind models.ObjectKind) (models.CountResult, error) {
	return s.services.SyncService.CountPage(ctx, kind)
}

func (s *localSource) SyncPage(ctx context.Context, kind models.ObjectKind, page int) (models.SyncProgress, error) {
	return s.services.SyncService.SyncPage(ctx, kind, page)
}
