// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the service stack shared by cmd/server and the
// in-process mode of cmd/client: source database, repositories, the
// receiving-site adapter and the services on top of them.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-press-sync/internal/adapter"
	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/service"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/models"
)

// Stack is a ready service layer plus the database it reads.
type Stack struct {
	Services *service.Services

	db *store.DB
}

// NewStack opens the source database, applies the sandbox schema when
// cfg.Driver.InitSchema is set, and builds the services.
func NewStack(ctx context.Context, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*Stack, error) {
	db, err := store.NewConnect(ctx, cfg.Source.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect source database: %w", err)
	}

	if cfg.Driver.InitSchema {
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init sandbox schema: %w", err)
		}
		log.Info().Msg("sandbox schema applied")
	}

	repos := store.NewRepositories(db, log)
	remote := adapter.NewHTTPRemoteAdapter(cfg.Target, log)

	services, err := service.NewServices(ctx, repos, remote, cfg, buildInfo, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &Stack{Services: services, db: db}, nil
}

// Close closes the source database.
func (s *Stack) Close() error {
	return s.db.Close()
}
