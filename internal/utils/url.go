// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// UntrailingSlash removes every trailing forward and backward slash from s.
func UntrailingSlash(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), `/\`)
}
