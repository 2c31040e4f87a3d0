// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-press-sync/internal/config"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/utils"
	"github.com/MKhiriev/go-press-sync/models"
)

// Remote endpoint layout.
const (
	RouteNamespace = "/wp-json/press-sync/v1/"
	StatusPath     = RouteNamespace + "status"
	KeyParam       = "press_sync_key"
)

// DefaultRequestTimeout bounds every outbound request when the
// configuration does not.
const DefaultRequestTimeout = 30 * time.Second

type httpRemoteAdapter struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP implementation of
// [RemoteAdapter]. Every request is bounded by cfg.RequestTimeout (30 s when
// unset). When cfg.RequestsPerSecond is positive, Send waits for a token of a
// limiter with that rate and a burst of one before each POST.
func NewHTTPRemoteAdapter(cfg config.Target, logger *logger.Logger) RemoteAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &httpRemoteAdapter{client: client, limiter: limiter, logger: logger}
}

// StatusURL returns the status probe URL of the site at baseURL.
func StatusURL(baseURL string) string {
	return utils.UntrailingSlash(baseURL) + StatusPath
}

// IngestURL returns the ingest URL of path on the site at baseURL.
func IngestURL(baseURL, path string) string {
	return utils.UntrailingSlash(baseURL) + RouteNamespace + path
}

// CheckStatus implements [RemoteAdapter].
func (h *httpRemoteAdapter) CheckStatus(ctx context.Context, baseURL, key string) bool {
	log := logger.FromContext(ctx)

	if utils.UntrailingSlash(baseURL) == "" {
		log.Warn().Str("func", "httpRemoteAdapter.CheckStatus").Msg("no target url configured")
		return false
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam(KeyParam, key).
		Get(StatusURL(baseURL))
	if err != nil {
		log.Err(err).Str("func", "httpRemoteAdapter.CheckStatus").Str("url", baseURL).Msg("status request failed")
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		log.Warn().
			Str("func", "httpRemoteAdapter.CheckStatus").
			Int("status", resp.StatusCode()).
			Msg("remote status endpoint did not answer 200")
		return false
	}

	var status models.RemoteStatusResponse
	if err = json.Unmarshal(resp.Body(), &status); err != nil {
		log.Err(err).Str("func", "httpRemoteAdapter.CheckStatus").Msg("malformed status body")
		return false
	}

	return status.Success
}

// Send implements [RemoteAdapter].
func (h *httpRemoteAdapter) Send(ctx context.Context, target models.SyncTarget, path string, obj models.TransformedObject) error {
	if err := h.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrThrottled, err)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam(KeyParam, target.AccessKey).
		SetFormDataFromValues(EncodeForm(obj)).
		Post(IngestURL(target.BaseURL, path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "httpRemoteAdapter.Send").
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("object sent")

	return mapHTTPError(resp)
}
