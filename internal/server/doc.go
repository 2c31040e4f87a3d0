// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the press-sync HTTP API until SIGTERM, SIGINT or
// SIGQUIT, then shuts it down gracefully so an in-flight page finishes.
package server
