// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/utils"
	"github.com/MKhiriev/go-press-sync/models"
)

// PageDriver requests pages of one kind strictly one at a time, starting at
// a given page, until a page reports the kind is done.
type PageDriver struct {
	syncer    PageSyncer
	kind      models.ObjectKind
	startPage int
	onPage    func(models.SyncProgress)

	logger *logger.Logger
}

// DriverOption customizes a PageDriver.
type DriverOption func(*PageDriver)

// WithProgress registers fn to be called with the progress of every page,
// in order, from the driver goroutine.
func WithProgress(fn func(models.SyncProgress)) DriverOption {
	return func(d *PageDriver) {
		d.onPage = fn
	}
}

// NewPageDriver returns a driver for kind. An empty kind lets the server
// use its configured objects_to_sync; startPage values below 1 mean 1.
func NewPageDriver(syncer PageSyncer, kind models.ObjectKind, startPage int, logger *logger.Logger, opts ...DriverOption) *PageDriver {
	if startPage < 1 {
		startPage = 1
	}

	d := &PageDriver{
		syncer:    syncer,
		kind:      kind,
		startPage: startPage,
		onPage:    func(models.SyncProgress) {},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run drives the migration. Cancelling ctx never interrupts a page in
// flight: the page completes, and Run returns ErrStopped before requesting
// the next one. Page failures abort the run.
//
// Every page request carries the run ID as its trace ID, so server logs of
// one run can be correlated.
func (d *PageDriver) Run(ctx context.Context) error {
	runID := utils.NewTraceID()
	ctx = utils.SetTraceIDToContext(ctx, runID)

	log := d.logger.WithKind(string(d.kind))
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID)
	})

	page := d.startPage
	for {
		if ctx.Err() != nil {
			log.Info().Int("last_page", page-1).Msg("migration stopped")
			return fmt.Errorf("%w before page %d", ErrStopped, page)
		}

		progress, err := d.syncer.SyncPage(context.WithoutCancel(ctx), d.kind, page)
		if err != nil {
			log.Err(err).Str("func", "*PageDriver.Run").Int("paged", page).Msg("page failed")
			return fmt.Errorf("sync page %d: %w", page, err)
		}

		d.onPage(progress)

		log.Info().
			Int("paged", progress.Page).
			Int64("total_objects", progress.TotalObjects).
			Int64("total_objects_processed", progress.TotalObjectsProcessed).
			Int("sent", progress.Sent).
			Int("failed", progress.Failed).
			Msg("page synced")

		if progress.Done() {
			log.Info().Int("last_page", progress.Page).Msg("migration finished")
			return nil
		}

		page = progress.NextPage
		if page <= progress.Page {
			page = progress.Page + 1
		}
	}
}
