// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// OrderFilters holds the filters applied to the order list.
// The zero value means "all orders".
type OrderFilters struct {
	Statuses []OrderStatus `json:"statuses,omitempty"`
	DateFrom *time.Time    `json:"date_from,omitempty"`
	DateTo   *time.Time    `json:"date_to,omitempty"`
}

// NumberOfActiveFilters counts the filter groups that restrict the list.
func (f OrderFilters) NumberOfActiveFilters() int {
	n := 0
	if len(f.Statuses) > 0 {
		n++
	}
	if f.DateFrom != nil || f.DateTo != nil {
		n++
	}
	return n
}

// ReadableString renders the active filters for the empty-state message,
// e.g. "processing, on-hold, 2026-01-01..2026-02-01".
func (f OrderFilters) ReadableString() string {
	parts := make([]string, 0, len(f.Statuses)+1)
	for _, s := range f.Statuses {
		parts = append(parts, string(s))
	}

	if f.DateFrom != nil || f.DateTo != nil {
		var from, to string
		if f.DateFrom != nil {
			from = f.DateFrom.Format(time.DateOnly)
		}
		if f.DateTo != nil {
			to = f.DateTo.Format(time.DateOnly)
		}
		parts = append(parts, from+".."+to)
	}

	return strings.Join(parts, ", ")
}

// Matches reports whether o passes the filters.
func (f OrderFilters) Matches(o Order) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if s == o.Status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.DateFrom != nil && o.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && o.CreatedAt.After(*f.DateTo) {
		return false
	}
	return true
}
