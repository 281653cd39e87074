// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagesync

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateInFlightRequest is returned when a page is marked in flight
	// while a previous request for it has not completed yet.
	ErrDuplicateInFlightRequest = errors.New("page request is already in flight")

	// ErrStaleCompletion is reported for completions of requests that are no
	// longer tracked: the page is not in flight, the session was reset, or
	// the coordinator was disposed.
	ErrStaleCompletion = errors.New("stale page completion")

	// ErrInvalidPage is returned for page numbers lower than 1.
	ErrInvalidPage = errors.New("invalid page number")
)

// FetchFailedError wraps a transport failure for a specific page.
type FetchFailedError struct {
	Page  int
	Cause error
}

func (e *FetchFailedError) Error() string {
	return fmt.Sprintf("fetching page %d failed: %v", e.Page, e.Cause)
}

func (e *FetchFailedError) Unwrap() error {
	return e.Cause
}
