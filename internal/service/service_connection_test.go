// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/mock"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConnectionSvc(t *testing.T, cfg config.StructuredConfig) (ConnectionService, *mock.MockRemoteAdapter, *mock.MockOptionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteAdapter(ctrl)
	options := mock.NewMockOptionRepository(ctrl)

	return NewConnectionService(remote, options, cfg, logger.Nop()), remote, options
}

// ── CheckConnection ──────────────────────────────────────────────────────────

func TestConnectionService_CheckConnection_UsesConfiguredTarget(t *testing.T) {
	cfg := config.StructuredConfig{Target: config.Target{ConnectedServer: "https://target.example/", PressSyncKey: "secret"}}
	svc, remote, _ := newTestConnectionSvc(t, cfg)

	remote.EXPECT().CheckStatus(gomock.Any(), "https://target.example/", "secret").Return(true)

	assert.True(t, svc.CheckConnection(context.Background(), ""))
}

func TestConnectionService_CheckConnection_ExplicitURL(t *testing.T) {
	cfg := config.StructuredConfig{Target: config.Target{ConnectedServer: "https://target.example", PressSyncKey: "secret"}}
	svc, remote, _ := newTestConnectionSvc(t, cfg)

	remote.EXPECT().CheckStatus(gomock.Any(), "https://other.example", "secret").Return(false)

	assert.False(t, svc.CheckConnection(context.Background(), "https://other.example"))
}

// ── ResolveContext ───────────────────────────────────────────────────────────

func TestConnectionService_ResolveContext_FromOptions(t *testing.T) {
	cfg := config.StructuredConfig{Target: config.Target{ConnectedServer: "https://target.example//", PressSyncKey: "secret"}}
	svc, _, options := newTestConnectionSvc(t, cfg)

	options.EXPECT().GetOption(gomock.Any(), OptionHome).Return("https://origin.example/", nil)
	options.EXPECT().GetOption(gomock.Any(), OptionGMTOffset).Return("-5", nil)

	conn, err := svc.ResolveContext(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ConnectionContext{
		OriginURL: "https://origin.example",
		GMTOffset: "-5",
		Target:    models.SyncTarget{BaseURL: "https://target.example", AccessKey: "secret"},
	}, conn)
}

func TestConnectionService_ResolveContext_ConfigOverridesOptions(t *testing.T) {
	cfg := config.StructuredConfig{
		Source: config.Source{SiteURL: "https://configured.example/", GMTOffset: "3"},
		Target: config.Target{ConnectedServer: "https://target.example"},
	}
	svc, _, _ := newTestConnectionSvc(t, cfg)

	conn, err := svc.ResolveContext(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "https://configured.example", conn.OriginURL)
	assert.Equal(t, "3", conn.GMTOffset)
}

func TestConnectionService_ResolveContext_MissingOptions(t *testing.T) {
	svc, _, options := newTestConnectionSvc(t, config.StructuredConfig{})

	options.EXPECT().GetOption(gomock.Any(), OptionHome).Return("", store.ErrNotFound)
	options.EXPECT().GetOption(gomock.Any(), OptionGMTOffset).Return("", nil)

	conn, err := svc.ResolveContext(context.Background())

	require.NoError(t, err)
	assert.Empty(t, conn.OriginURL)
	assert.Equal(t, "0", conn.GMTOffset)
	assert.Empty(t, conn.Target.BaseURL)
}

func TestConnectionService_ResolveContext_StoreError(t *testing.T) {
	svc, _, options := newTestConnectionSvc(t, config.StructuredConfig{})
	dbErr := errors.New("connection refused")

	options.EXPECT().GetOption(gomock.Any(), OptionHome).Return("", dbErr)

	_, err := svc.ResolveContext(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "origin url")
}
