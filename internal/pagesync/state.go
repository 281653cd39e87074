// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagesync

import (
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

// PageState is the per-session page bookkeeping of a [Coordinator].
//
// A page is "requested" from the moment it is marked in flight until the
// session is reset, unless its fetch fails: failed pages are forgotten so a
// later scroll check may ask for them again. The zero value is not usable,
// use [NewPageState].
type PageState struct {
	inFlight  map[int]struct{}
	requested map[int]struct{}
	synced    map[int]struct{}
	highest   int

	logger *logger.Logger
}

// NewPageState returns an empty PageState. A nil logger discards output.
func NewPageState(log *logger.Logger) *PageState {
	if log == nil {
		log = logger.Nop()
	}
	return &PageState{
		inFlight:  make(map[int]struct{}),
		requested: make(map[int]struct{}),
		synced:    make(map[int]struct{}),
		logger:    log,
	}
}

// MarkInFlight records that a request for page was issued.
//
// Marking a page that is already in flight is a caller bug: it is logged,
// the state is left untouched and ErrDuplicateInFlightRequest is returned.
func (s *PageState) MarkInFlight(page int) error {
	if page < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	if _, ok := s.inFlight[page]; ok {
		s.logger.Warn().
			Str("func", "PageState.MarkInFlight").
			Int("page", page).
			Msg("page is already in flight, ignoring duplicate request")
		return ErrDuplicateInFlightRequest
	}

	s.inFlight[page] = struct{}{}
	s.requested[page] = struct{}{}
	if page > s.highest {
		s.highest = page
	}
	return nil
}

// MarkComplete removes page from the in-flight set and reports whether it
// was in flight. Completions for pages that are not in flight are ignored.
func (s *PageState) MarkComplete(page int, success bool) bool {
	if _, ok := s.inFlight[page]; !ok {
		return false
	}
	delete(s.inFlight, page)

	if success {
		s.synced[page] = struct{}{}
	} else {
		delete(s.requested, page)
	}
	return true
}

// IsInFlight reports whether a request for page is pending.
func (s *PageState) IsInFlight(page int) bool {
	_, ok := s.inFlight[page]
	return ok
}

// IsRequested reports whether page was requested in this session and did
// not fail.
func (s *PageState) IsRequested(page int) bool {
	_, ok := s.requested[page]
	return ok
}

// IsSynced reports whether page was fetched successfully in this session.
func (s *PageState) IsSynced(page int) bool {
	_, ok := s.synced[page]
	return ok
}

// InFlightCount returns the number of pending requests.
func (s *PageState) InFlightCount() int {
	return len(s.inFlight)
}

// HighestRequested returns the highest page requested in this session.
// The boolean is false when nothing was requested yet.
func (s *PageState) HighestRequested() (int, bool) {
	return s.highest, s.highest > 0
}

// Reset forgets every page.
func (s *PageState) Reset() {
	clear(s.inFlight)
	clear(s.requested)
	clear(s.synced)
	s.highest = 0
}
