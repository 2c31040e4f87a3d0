// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-press-sync/internal/adapter"
	"github.com/MKhiriev/go-press-sync/internal/logger"
	"github.com/MKhiriev/go-press-sync/internal/service"
	"github.com/MKhiriev/go-press-sync/internal/store"
	"github.com/MKhiriev/go-press-sync/internal/utils"
	"github.com/MKhiriev/go-press-sync/internal/validators"
	"github.com/MKhiriev/go-press-sync/models"
)

// errorStatuses is checked in order: store errors may wrap both
// ErrRetryable and ErrExecutingQuery, and the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrInvalidPaged, http.StatusBadRequest},
	{ErrInvalidBody, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},

	{validators.ErrInvalidKind, http.StatusBadRequest},
	{validators.ErrInvalidPage, http.StatusBadRequest},
	{validators.ErrInvalidURL, http.StatusBadRequest},
	{validators.ErrInvalidRequest, http.StatusBadRequest},

	{service.ErrUnknownKind, http.StatusBadRequest},
	{service.ErrInvalidPage, http.StatusBadRequest},
	{service.ErrTargetNotConfigured, http.StatusPreconditionFailed},

	{store.ErrRetryable, http.StatusServiceUnavailable},
	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},

	{adapter.ErrTransport, http.StatusBadGateway},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status and a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Error:   err.Error(),
		TraceID: w.Header().Get(traceIDHeader),
	}, status)
}
