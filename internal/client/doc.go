// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the migration driver application.
//
// The driver checks that the receiving site is reachable, then requests
// pages of the configured kind one at a time until the kind is done. Pages
// are processed either by a remote press-sync server over its HTTP API or
// by an in-process service stack reading the source database directly.
// Progress is shown in a terminal UI, or only logged in headless mode.
package client
