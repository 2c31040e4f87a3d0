// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-press-sync/internal/adapter"
	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/metrics"
	"github.com/MKhiriev/go-press-sync/models"
)

type syncService struct {
	connection  ConnectionService
	counter     CounterService
	fetcher     FetcherService
	transformer Transformer
	remote      adapter.RemoteAdapter

	cfg config.Sync

	logger *logger.Logger
}

func NewSyncService(
	connection ConnectionService,
	counter CounterService,
	fetcher FetcherService,
	transformer Transformer,
	remote adapter.RemoteAdapter,
	cfg config.Sync,
	logger *logger.Logger,
) SyncService {
	return &syncService{
		connection:  connection,
		counter:     counter,
		fetcher:     fetcher,
		transformer: transformer,
		remote:      remote,
		cfg:         cfg,
		logger:      logger,
	}
}

// SyncPage processes one page. Once fetched, every object of the page is
// sent even if ctx is cancelled. Failed objects are logged and skipped.
func (s *syncService) SyncPage(ctx context.Context, kind models.ObjectKind, page int) (models.SyncProgress, error) {
	started := time.Now()

	kind, err := s.resolveKind(kind)
	if err != nil {
		return models.SyncProgress{}, err
	}
	if page < 1 {
		return models.SyncProgress{}, ErrInvalidPage
	}

	ctx = context.WithoutCancel(ctx)
	class := kind.Class().String()
	log := logger.FromContext(ctx).WithKind(string(kind))

	conn, err := s.connection.ResolveContext(ctx)
	if err != nil {
		metrics.ObservePage(class, metrics.OutcomeError, started)
		return models.SyncProgress{}, fmt.Errorf("resolve connection: %w", err)
	}
	if conn.Target.BaseURL == "" {
		metrics.ObservePage(class, metrics.OutcomeError, started)
		return models.SyncProgress{}, ErrTargetNotConfigured
	}

	total, err := s.counter.CountObjects(ctx, kind)
	if err != nil {
		metrics.ObservePage(class, metrics.OutcomeError, started)
		return models.SyncProgress{}, err
	}

	objects, err := s.fetcher.FetchPage(ctx, conn, kind, page, s.cfg.Taxonomies)
	if err != nil {
		metrics.ObservePage(class, metrics.OutcomeError, started)
		return models.SyncProgress{}, err
	}

	progress := models.SyncProgress{
		Label:             kind.Label(),
		Kind:              kind,
		TotalObjects:      total,
		ProcessedThisPage: len(objects),
		Page:              page,
		NextPage:          page + 1,
	}

	path := kind.EndpointPath()
	for _, raw := range objects {
		obj, err := s.transformer.Transform(ctx, conn, raw)
		if err != nil {
			metrics.ObserveTransformError(class)
			log.Err(err).Str("func", "syncService.SyncPage").Int("paged", page).Int64("id", raw.ID()).Msg("failed to transform object, skipping")
			progress.Failed++
			continue
		}

		sendStarted := time.Now()
		err = s.remote.Send(ctx, conn.Target, path, obj)
		metrics.ObserveSend(class, sendStarted, err)
		if err != nil {
			log.Warn().Err(err).Str("func", "syncService.SyncPage").Int("paged", page).Int64("id", raw.ID()).Msg("failed to send object, skipping")
			progress.Failed++
			continue
		}
		progress.Sent++
	}

	progress.TotalObjectsProcessed = s.processed(len(objects), page)
	metrics.ObservePage(class, metrics.OutcomeSuccess, started)

	log.Info().
		Str("func", "syncService.SyncPage").
		Str("sync_method", s.cfg.Method).
		Int("paged", page).
		Int("fetched", progress.ProcessedThisPage).
		Int("sent", progress.Sent).
		Int("failed", progress.Failed).
		Int64("total_objects", total).
		Int64("total_objects_processed", progress.TotalObjectsProcessed).
		Dur("elapsed", time.Since(started)).
		Msg("page synced")

	return progress, nil
}

func (s *syncService) CountPage(ctx context.Context, kind models.ObjectKind) (models.CountResult, error) {
	kind, err := s.resolveKind(kind)
	if err != nil {
		return models.CountResult{}, err
	}

	total, err := s.counter.CountObjects(ctx, kind)
	if err != nil {
		return models.CountResult{}, err
	}

	return models.CountResult{
		Label:        kind.Label(),
		Kind:         kind,
		TotalObjects: total,
	}, nil
}

// processed estimates progress after a page of n objects. The default
// reproduces the n*page estimate existing callers expect; ExactProgress
// reports the cumulative count instead.
func (s *syncService) processed(n, page int) int64 {
	if s.cfg.ExactProgress {
		return int64((page-1)*models.PageSize + n)
	}
	if n == 0 {
		return int64(models.PageSize * page)
	}

	return int64(n * page)
}

func (s *syncService) resolveKind(kind models.ObjectKind) (models.ObjectKind, error) {
	raw := string(kind)
	if raw == "" {
		raw = s.cfg.ObjectsToSync
	}

	parsed, ok := models.ParseObjectKind(raw)
	if !ok {
		return "", ErrUnknownKind
	}

	return parsed, nil
}
