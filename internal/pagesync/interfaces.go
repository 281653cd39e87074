// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagesync

import (
	"time"

	"github.com/MKhiriev/go-order-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pagesync_mock.go -package=mock

// FetchResult is the outcome of a page fetch.
type FetchResult struct {
	// Duration is how long the fetch took end to end.
	Duration time.Duration
	// Err is nil on success.
	Err error
}

// CompletionFunc receives the outcome of a page request. It must be invoked
// exactly once per request, on the coordinator owner's event loop.
type CompletionFunc func(req models.PageRequest, res FetchResult)

// Fetcher performs page fetches on behalf of a [Coordinator].
type Fetcher interface {
	// Fetch starts fetching req and returns without waiting for the result.
	// complete is called once the fetch settles, successfully or not.
	Fetch(req models.PageRequest, complete CompletionFunc)
}

// Completion is passed to [Observer.SyncFinished].
type Completion struct {
	Request models.PageRequest
	Result  FetchResult
	// FirstPagePending is true while the first page of the current session is
	// still being fetched. Observers should not settle the list UI then.
	FirstPagePending bool
}

// Observer is notified about sync activity of a [Coordinator].
type Observer interface {
	// SyncStarted is called right before req is handed to the fetcher.
	SyncStarted(req models.PageRequest)
	// SyncFinished is called after a tracked request completed.
	SyncFinished(c Completion)
}

// Clock abstracts time for the debounce window.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces request identifiers.
type IDGenerator interface {
	Generate() string
}
