// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/tui"
	"github.com/MKhiriev/go-press-sync/internal/workers"
	"github.com/MKhiriev/go-press-sync/models"
)

type App struct {
	source PageSource
	ui     *tui.TUI

	kind      models.ObjectKind
	startPage int
	target    string

	logger *logger.Logger
}

// NewApp builds the driver. A nil ui selects headless mode.
func NewApp(source PageSource, ui *tui.TUI, cfg config.StructuredConfig, logger *logger.Logger) (*App, error) {
	if source == nil {
		return nil, errors.New("page source is required")
	}

	target := cfg.Target.ConnectedServer
	if target == "" {
		target = cfg.Driver.APIAddress
	}

	return &App{
		source:    source,
		ui:        ui,
		kind:      models.ObjectKind(cfg.Sync.ObjectsToSync),
		startPage: cfg.Driver.StartPage,
		target:    target,
		logger:    logger,
	}, nil
}

// Run checks the connection and drives the migration. A stop requested by
// the user or by ctx is not an error.
func (a *App) Run(ctx context.Context) error {
	connected, err := a.source.CheckConnection(ctx)
	if err != nil {
		return fmt.Errorf("check connection: %w", err)
	}
	if !connected {
		return ErrNotConnected
	}

	count, err := a.source.Count(ctx, a.kind)
	if err != nil {
		return fmt.Errorf("count objects: %w", err)
	}
	a.logger.Info().
		Str("objects_to_sync", count.Label).
		Int64("total_objects", count.TotalObjects).
		Int("start_page", max(1, a.startPage)).
		Msg("starting migration")

	if a.ui == nil {
		err = a.drive(ctx, func(models.SyncProgress) {})
	} else {
		err = a.ui.RunMigration(ctx, a.target, a.drive)
	}

	switch {
	case errors.Is(err, workers.ErrStopped), errors.Is(err, tui.ErrUserQuit):
		a.logger.Warn().Err(err).Msg("migration interrupted")
		return nil
	case err != nil:
		return fmt.Errorf("migrate %s: %w", count.Label, err)
	}

	return nil
}

func (a *App) drive(ctx context.Context, onPage func(models.SyncProgress)) error {
	driver := workers.NewPageDriver(a.source, a.kind, a.startPage, a.logger, workers.WithProgress(onPage))
	return workers.NewWorkers(driver).Run(ctx)
}
