// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "testing"

func TestUntrailingSlash(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://target.example", "https://target.example"},
		{"https://target.example/", "https://target.example"},
		{"https://target.example//", "https://target.example"},
		{`https://target.example\`, "https://target.example"},
		{"  https://target.example/ ", "https://target.example"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := UntrailingSlash(tt.in); got != tt.want {
				t.Errorf("UntrailingSlash(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
