// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/utils"
	"github.com/MKhiriev/go-press-sync/models"
)

// Page-driving API routes served by cmd/server.
const (
	APISyncPagePath         = "/api/sync/page"
	APISyncCountPath        = "/api/sync/count"
	APIConnectionStatusPath = "/api/connection/status"
)

type httpSyncAPIAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSyncAPIAdapter constructs the HTTP implementation of
// [SyncAPIAdapter] for the server at address. A missing scheme defaults to
// http. timeout bounds each call; a page call on the server performs up to
// ten outbound sends, so it should be generous.
func NewHTTPSyncAPIAdapter(address string, timeout time.Duration, logger *logger.Logger) (SyncAPIAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpSyncAPIAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CheckConnection implements [SyncAPIAdapter]. It GETs
// GET /api/connection/status.
func (h *httpSyncAPIAdapter) CheckConnection(ctx context.Context) (bool, error) {
	var status models.ConnectionStatusResponse
	if err := h.do(ctx, h.client.R().SetContext(ctx), "GET", APIConnectionStatusPath, &status); err != nil {
		return false, fmt.Errorf("connection status request: %w", err)
	}

	return status.Connected, nil
}

// Count implements [SyncAPIAdapter]. It GETs GET /api/sync/count.
func (h *httpSyncAPIAdapter) Count(ctx context.Context, kind models.ObjectKind) (models.CountResult, error) {
	req := h.client.R().SetContext(ctx)
	if kind != "" {
		req.SetQueryParam("objects_to_sync", string(kind))
	}

	var result models.CountResult
	if err := h.do(ctx, req, "GET", APISyncCountPath, &result); err != nil {
		return models.CountResult{}, fmt.Errorf("count request: %w", err)
	}

	return result, nil
}

// SyncPage implements [SyncAPIAdapter]. It POSTs the kind and page index
// form-encoded to POST /api/sync/page.
func (h *httpSyncAPIAdapter) SyncPage(ctx context.Context, kind models.ObjectKind, page int) (models.SyncProgress, error) {
	form := map[string]string{"paged": strconv.Itoa(page)}
	if kind != "" {
		form["objects_to_sync"] = string(kind)
	}

	var progress models.SyncProgress
	if err := h.do(ctx, h.client.R().SetContext(ctx).SetFormData(form), "POST", APISyncPagePath, &progress); err != nil {
		return models.SyncProgress{}, fmt.Errorf("sync page %d request: %w", page, err)
	}

	return progress, nil
}

func (h *httpSyncAPIAdapter) do(ctx context.Context, req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "httpSyncAPIAdapter.do").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("api call failed")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}
