// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncTarget is the receiving installation of one page call. It is built
// once per call from configuration and passed by value.
type SyncTarget struct {
	// BaseURL is the untrailingslashed base URL of the receiving site.
	BaseURL string
	// AccessKey is the shared secret sent as press_sync_key.
	AccessKey string
}

// ConnectionContext holds everything resolved about both ends of a sync
// before a page is processed.
type ConnectionContext struct {
	// OriginURL is the untrailingslashed base URL of the source site. It is
	// the needle of the link rewrite and the press_sync_source value.
	OriginURL string
	// GMTOffset is the source site's configured offset from UTC.
	GMTOffset string
	// Target is the receiving side.
	Target SyncTarget
}

// SyncOptions are the persisted settings consulted by each page call.
type SyncOptions struct {
	ConnectedServer    string
	RemotePressSyncKey string
	SyncMethod         string
	ObjectsToSync      ObjectKind
}

// Target builds the SyncTarget described by o.
func (o SyncOptions) Target() SyncTarget {
	return SyncTarget{
		BaseURL:   o.ConnectedServer,
		AccessKey: o.RemotePressSyncKey,
	}
}

// SyncProgress is the result of one page call.
type SyncProgress struct {
	// Label is the human-readable plural name of the synced kind.
	Label string `json:"objects_to_sync"`
	// Kind is the raw objects_to_sync identifier.
	Kind ObjectKind `json:"kind"`
	// TotalObjects is the number of objects of Kind in the source.
	TotalObjects int64 `json:"total_objects"`
	// TotalObjectsProcessed is the progress estimate after this page.
	TotalObjectsProcessed int64 `json:"total_objects_processed"`
	// ProcessedThisPage is how many objects the page contained.
	ProcessedThisPage int `json:"processed_this_page"`
	// Page is the 1-based index of the processed page.
	Page int `json:"paged"`
	// NextPage is Page + 1.
	NextPage int `json:"next_page"`
	// Sent counts objects the remote endpoint accepted.
	Sent int `json:"sent"`
	// Failed counts objects skipped after a transform or send failure.
	Failed int `json:"failed"`
}

// Done reports whether a driver should stop requesting pages.
func (p SyncProgress) Done() bool {
	return p.ProcessedThisPage == 0 || p.TotalObjectsProcessed >= p.TotalObjects
}

// CountResult is the response of a count-only call.
type CountResult struct {
	Label        string     `json:"objects_to_sync"`
	Kind         ObjectKind `json:"kind"`
	TotalObjects int64      `json:"total_objects"`
}
