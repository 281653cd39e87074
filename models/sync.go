// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// SyncReason tells the fetch collaborator why a page is being requested.
// It is carried along with every [PageRequest] and ends up in logs and
// analytics.
type SyncReason string

const (
	// SyncReasonViewAppear is used when the order list becomes visible.
	// Resynchronizations with this reason are debounced.
	SyncReasonViewAppear SyncReason = "view_appear"
	// SyncReasonPullToRefresh is used for an explicit user refresh.
	SyncReasonPullToRefresh SyncReason = "pull_to_refresh"
	// SyncReasonScrollThreshold is used when scrolling gets close to the end
	// of the loaded items.
	SyncReasonScrollThreshold SyncReason = "scroll_threshold"
	// SyncReasonFilterChanged is used after new list filters were applied.
	SyncReasonFilterChanged SyncReason = "filter_changed"
	// SyncReasonManualResync is used for resynchronizations requested by the
	// host application (e.g. the periodic resync job).
	SyncReasonManualResync SyncReason = "manual_resync"
)

// Valid reports whether r is one of the known reasons.
func (r SyncReason) Valid() bool {
	switch r {
	case SyncReasonViewAppear,
		SyncReasonPullToRefresh,
		SyncReasonScrollThreshold,
		SyncReasonFilterChanged,
		SyncReasonManualResync:
		return true
	}
	return false
}

// PageRequest describes a single page fetch issued by the syncing
// coordinator. It is an immutable value: the coordinator never changes a
// request after handing it to the fetcher.
type PageRequest struct {
	// Page is the 1-based page number.
	Page int
	// PageSize is the number of items per page.
	PageSize int
	// Reason is why the page is being fetched.
	Reason SyncReason
	// Session is the coordinator session generation that issued the request.
	// Completions from an older session are ignored.
	Session uint64
	// RequestID identifies the request in logs and is sent to the server
	// as a trace id.
	RequestID string
}

// IsFirstPage reports whether the request targets page 1.
func (r PageRequest) IsFirstPage() bool {
	return r.Page == FirstPage
}

// Offset returns the index of the first item on the requested page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

func (r PageRequest) String() string {
	return fmt.Sprintf("page=%d size=%d reason=%s session=%d", r.Page, r.PageSize, r.Reason, r.Session)
}

// FirstPage is the index of the first page of any paged resource.
const FirstPage = 1
