// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-press-sync/models"
)

func renderBuildInfoLine(info models.AppBuildInfo) string {
	return fmt.Sprintf("press-sync %s (%s, %s)",
		valueOrNA(info.BuildVersion()),
		valueOrNA(info.BuildCommit()),
		valueOrNA(info.BuildDate()),
	)
}
