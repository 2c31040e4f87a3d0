// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server, the driver and the
// adapters: context keys, JSON responses, the resty client, trace IDs and URL
// normalization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so string keys of other
// packages cannot collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key of the request trace ID.
var TraceIDCtxKey = contextKey("traceID")

// SetTraceIDToContext returns a copy of ctx carrying traceID.
func SetTraceIDToContext(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace ID stored by
// SetTraceIDToContext. ok is false when none is present or the stored value
// is not a non-empty string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
