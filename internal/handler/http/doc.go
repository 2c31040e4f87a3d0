// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the page-driving API of press-sync.
//
// A driver (the bundled cmd/client or any external UI) calls
// POST /api/sync/page with increasing page indices until the returned
// progress says the kind is done. Count and connection probes, build
// information and Prometheus metrics are served alongside. Request tracing
// and access logging are handled by middleware before requests reach the
// service layer.
package http
