// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-press-sync/internal/adapter"
	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/metrics"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/internal/utils"
	"github.com/MKhiriev/go-press-sync/models"
)

// Source options consulted when the configuration does not override them.
const (
	OptionHome      = "home"
	OptionGMTOffset = "gmt_offset"

	defaultGMTOffset = "0"
)

type connectionService struct {
	remote  adapter.RemoteAdapter
	options store.OptionRepository

	source config.Source
	target config.Target

	logger *logger.Logger
}

func NewConnectionService(remote adapter.RemoteAdapter, options store.OptionRepository, cfg config.StructuredConfig, logger *logger.Logger) ConnectionService {
	return &connectionService{
		remote:  remote,
		options: options,
		source:  cfg.Source,
		target:  cfg.Target,
		logger:  logger,
	}
}

func (c *connectionService) CheckConnection(ctx context.Context, url string) bool {
	if url == "" {
		url = c.target.ConnectedServer
	}

	connected := c.remote.CheckStatus(ctx, url, c.target.PressSyncKey)
	metrics.ObserveConnectionCheck(connected)

	logger.FromContext(ctx).Debug().
		Str("func", "connectionService.CheckConnection").
		Str("url", url).
		Bool("connected", connected).
		Msg("checked receiving site")

	return connected
}

func (c *connectionService) ResolveContext(ctx context.Context) (models.ConnectionContext, error) {
	origin, err := c.option(ctx, c.source.SiteURL, OptionHome, "")
	if err != nil {
		return models.ConnectionContext{}, fmt.Errorf("resolve origin url: %w", err)
	}

	gmtOffset, err := c.option(ctx, c.source.GMTOffset, OptionGMTOffset, defaultGMTOffset)
	if err != nil {
		return models.ConnectionContext{}, fmt.Errorf("resolve gmt offset: %w", err)
	}

	return models.ConnectionContext{
		OriginURL: utils.UntrailingSlash(origin),
		GMTOffset: gmtOffset,
		Target: models.SyncOptions{
			ConnectedServer:    utils.UntrailingSlash(c.target.ConnectedServer),
			RemotePressSyncKey: c.target.PressSyncKey,
		}.Target(),
	}, nil
}

// option returns configured when set, else the named source option, else
// fallback.
func (c *connectionService) option(ctx context.Context, configured, name, fallback string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	value, err := c.options.GetOption(ctx, name)
	if errors.Is(err, store.ErrNotFound) || (err == nil && value == "") {
		logger.FromContext(ctx).Warn().
			Str("func", "connectionService.option").
			Str("option", name).
			Str("fallback", fallback).
			Msg("source option is not set")
		return fallback, nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}
