// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionStatusResponse reports the result of a status probe.
type ConnectionStatusResponse struct {
	URL       string `json:"url"`
	Connected bool   `json:"connected"`
}

// RemoteStatusResponse is the body returned by the remote status endpoint.
type RemoteStatusResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}
