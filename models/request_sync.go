// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncPageRequest asks the server to process one page of one object kind.
type SyncPageRequest struct {
	// ObjectsToSync overrides the configured kind when non-empty.
	ObjectsToSync string `json:"objects_to_sync" validate:"omitempty,max=64,objectkind"`

	// Page is the 1-based page index.
	Page int `json:"paged" validate:"gte=1"`
}

// CountRequest asks for the total number of objects of a kind.
type CountRequest struct {
	ObjectsToSync string `json:"objects_to_sync" validate:"omitempty,max=64,objectkind"`
}

// ConnectionStatusRequest asks whether a receiving site is reachable with
// the configured key. An empty URL means the configured target.
type ConnectionStatusRequest struct {
	URL string `json:"url" validate:"omitempty,url"`
}
