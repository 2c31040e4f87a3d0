// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-press-sync/internal/adapter"
	"github.com/MKhiriev/go-press-sync/internal/workers"
)

// humanizeError turns a driver error into a line for the final screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, workers.ErrStopped):
		return "Stopped. Resume later with the next page index."
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "Source database is temporarily unavailable, retry the same page later"
	case errors.Is(err, adapter.ErrTransport):
		return "press-sync server is unreachable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "press-sync server is unreachable"
	}

	return err.Error()
}
