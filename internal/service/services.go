// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-press-sync/internal/adapter"
	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/models"
)

type Services struct {
	ConnectionService ConnectionService
	CounterService    CounterService
	SyncService       SyncService
	AppInfoService    AppInfoService
}

// NewServices wires the sync pipeline over repos. Optional plugin tables are
// probed once: the order items filter and the legacy connections lookup are
// only enabled when their tables exist.
func NewServices(ctx context.Context, repos *store.Repositories, remote adapter.RemoteAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tables := repos.Tables()

	hasOrderItems, err := tablesExist(ctx, repos.SchemaInspector, tables.OrderItems(), tables.OrderItemMeta())
	if err != nil {
		return nil, err
	}
	hasConnections, err := tablesExist(ctx, repos.SchemaInspector, tables.P2P())
	if err != nil {
		return nil, err
	}

	var connections store.ConnectionRepository
	if hasConnections {
		connections = repos.ConnectionRepository
	}

	resolver := NewRelationshipResolver(
		repos.PostRepository,
		repos.CommentRepository,
		repos.TermRepository,
		repos.OrderItemRepository,
		connections,
		logger,
	)

	var filters []PostFilter
	if hasOrderItems {
		filters = append(filters, NewOrderItemsFilter(resolver))
	}

	logger.Info().
		Bool("order_items", hasOrderItems).
		Bool("p2p_connections", hasConnections).
		Msg("optional source tables probed")

	connectionService := NewConnectionService(remote, repos.OptionRepository, cfg, logger)
	counterService := NewCounterService(repos.PostRepository, repos.UserRepository, repos.CommentRepository, logger)
	fetcherService := NewFetcherService(
		repos.PostRepository,
		repos.UserRepository,
		repos.CommentRepository,
		repos.TermRepository,
		repos.OptionRepository,
		resolver,
		tables.Prefix(),
		logger,
	)

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ConnectionService: connectionService,
		CounterService:    counterService,
		SyncService: NewSyncService(
			connectionService,
			counterService,
			fetcherService,
			NewTransformer(resolver, logger, filters...),
			remote,
			cfg.Sync,
			logger,
		),
		AppInfoService: appInfoService,
	}, nil
}

func tablesExist(ctx context.Context, inspector store.SchemaInspector, tables ...string) (bool, error) {
	for _, table := range tables {
		ok, err := inspector.TableExists(ctx, table)
		if err != nil {
			return false, fmt.Errorf("probe table %s: %w", table, err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
