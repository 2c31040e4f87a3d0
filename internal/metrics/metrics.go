// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics registers the Prometheus collectors of press-sync with the
// default registry. They are exposed by the page-driving API on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess        = "success"
	OutcomeError          = "error"
	OutcomeTransformError = "transform_error"
	OutcomeSendError      = "send_error"
)

var (
	// PagesTotal counts page calls.
	// Labels:
	//   - class: object class ("content", "attachment", "comment", "user", "order")
	//   - outcome: "success", "error"
	PagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "press_sync",
			Name:      "pages_total",
			Help:      "Total number of processed sync pages",
		},
		[]string{"class", "outcome"},
	)

	// PageDuration measures a whole page call: count, fetch and every send.
	PageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "press_sync",
			Name:      "page_duration_seconds",
			Help:      "Duration of sync page calls in seconds",
			// ten sends bounded by 30 s each
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"class"},
	)

	// ObjectsTotal counts objects by what happened to them.
	// Labels:
	//   - class: object class
	//   - outcome: "success", "transform_error", "send_error"
	ObjectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "press_sync",
			Name:      "objects_total",
			Help:      "Total number of objects handled by sync pages",
		},
		[]string{"class", "outcome"},
	)

	// SendDuration measures single ingest POSTs to the receiving site.
	SendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "press_sync",
			Name:      "send_duration_seconds",
			Help:      "Duration of object sends to the receiving site in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"class"},
	)

	// ConnectionChecks counts status probes of the receiving site.
	ConnectionChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "press_sync",
			Name:      "connection_checks_total",
			Help:      "Total number of status probes of the receiving site",
		},
		[]string{"connected"},
	)
)

// ObservePage records one page call.
func ObservePage(class, outcome string, started time.Time) {
	PagesTotal.WithLabelValues(class, outcome).Inc()
	PageDuration.WithLabelValues(class).Observe(time.Since(started).Seconds())
}

// ObserveSend records one ingest POST.
func ObserveSend(class string, started time.Time, err error) {
	SendDuration.WithLabelValues(class).Observe(time.Since(started).Seconds())
	if err != nil {
		ObjectsTotal.WithLabelValues(class, OutcomeSendError).Inc()
		return
	}
	ObjectsTotal.WithLabelValues(class, OutcomeSuccess).Inc()
}

// ObserveTransformError records an object skipped before sending.
func ObserveTransformError(class string) {
	ObjectsTotal.WithLabelValues(class, OutcomeTransformError).Inc()
}

// ObserveConnectionCheck records one status probe.
func ObserveConnectionCheck(connected bool) {
	label := "false"
	if connected {
		label = "true"
	}
	ConnectionChecks.WithLabelValues(label).Inc()
}
