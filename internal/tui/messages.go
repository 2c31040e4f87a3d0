// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-press-sync/models"

type pageSyncedMsg struct {
	progress models.SyncProgress
}

type migrationDoneMsg struct {
	err error
}
