// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// API routes.
const (
	routeSyncPage         = "/api/sync/page"
	routeSyncCount        = "/api/sync/count"
	routeConnectionStatus = "/api/connection/status"
	routeVersion          = "/api/version"
	routeBuildInfo        = "/api/version/build"
	routeMetrics          = "/metrics"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	router.Group(func(r chi.Router) {
		r.Post(routeSyncPage, h.syncPage)
		r.Get(routeSyncCount, h.countObjects)
		r.Get(routeConnectionStatus, h.connectionStatus)
	})

	router.Get(routeVersion, h.getServerVersion)
	router.Get(routeBuildInfo, h.getBuildInfo)
	router.Method("GET", routeMetrics, promhttp.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
