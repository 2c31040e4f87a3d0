// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-press-sync/internal/utils"
	"github.com/MKhiriev/go-press-sync/models"
)

// connectionStatus probes the receiving site. A failed probe is a normal
// answer with connected=false, never an error status.
func (h *Handler) connectionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := models.ConnectionStatusRequest{URL: strings.TrimSpace(r.URL.Query().Get(paramURL))}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, "*Handler.connectionStatus", err)
		return
	}

	connected := h.services.ConnectionService.CheckConnection(ctx, req.URL)

	utils.WriteJSON(w, models.ConnectionStatusResponse{
		URL:       req.URL,
		Connected: connected,
	}, http.StatusOK)
}
