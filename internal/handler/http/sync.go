// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-press-sync/internal/utils"
	"github.com/MKhiriev/go-press-sync/models"
)

// Request parameter names shared with the original AJAX actions.
const (
	paramObjectsToSync = "objects_to_sync"
	paramPaged         = "paged"
	paramURL           = "url"

	defaultPage = 1
)

// syncPage processes one page. Parameters come from a JSON body, or from
// form values and the query string.
func (h *Handler) syncPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseSyncPageRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.syncPage", err)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "*Handler.syncPage", err)
		return
	}

	progress, err := h.services.SyncService.SyncPage(ctx, models.ObjectKind(req.ObjectsToSync), req.Page)
	if err != nil {
		writeError(w, r, "*Handler.syncPage", err)
		return
	}

	utils.WriteJSON(w, progress, http.StatusOK)
}

func (h *Handler) countObjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.CountRequest{ObjectsToSync: strings.TrimSpace(r.URL.Query().Get(paramObjectsToSync))}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "*Handler.countObjects", err)
		return
	}

	result, err := h.services.SyncService.CountPage(ctx, models.ObjectKind(req.ObjectsToSync))
	if err != nil {
		writeError(w, r, "*Handler.countObjects", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func parseSyncPageRequest(r *http.Request) (models.SyncPageRequest, error) {
	req := models.SyncPageRequest{Page: defaultPage}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		if req.Page == 0 {
			req.Page = defaultPage
		}
		req.ObjectsToSync = strings.TrimSpace(req.ObjectsToSync)
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	req.ObjectsToSync = strings.TrimSpace(r.Form.Get(paramObjectsToSync))
	if paged := strings.TrimSpace(r.Form.Get(paramPaged)); paged != "" {
		page, err := strconv.Atoi(paged)
		if err != nil {
			return req, fmt.Errorf("%w: %q", ErrInvalidPaged, paged)
		}
		req.Page = page
	}

	return req, nil
}
