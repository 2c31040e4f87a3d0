// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// Outbound request headers.
const (
	TraceIDHeader = "X-Trace-ID"
	UserAgent     = "press-sync"
)

// HTTPClient embeds *resty.Client so adapters can use it directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client that identifies itself
// as press-sync and forwards the trace ID found in the request context as
// the X-Trace-ID header.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if traceID, ok := GetTraceIDFromContext(req.Context()); ok {
				req.SetHeader(TraceIDHeader, traceID)
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
