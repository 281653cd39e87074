// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) *time.Time {
	t := time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestOrderFilters_NumberOfActiveFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters OrderFilters
		want    int
	}{
		{"none", OrderFilters{}, 0},
		{"statuses", OrderFilters{Statuses: []OrderStatus{OrderStatusPending, OrderStatusFailed}}, 1},
		{"only from", OrderFilters{DateFrom: day(1)}, 1},
		{"date range", OrderFilters{DateFrom: day(1), DateTo: day(9)}, 1},
		{"both", OrderFilters{Statuses: []OrderStatus{OrderStatusOnHold}, DateTo: day(9)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.NumberOfActiveFilters())
		})
	}
}

func TestOrderFilters_ReadableString(t *testing.T) {
	assert.Equal(t, "", OrderFilters{}.ReadableString())
	assert.Equal(t, "processing, on-hold", OrderFilters{
		Statuses: []OrderStatus{OrderStatusProcessing, OrderStatusOnHold},
	}.ReadableString())
	assert.Equal(t, "pending, 2026-01-01..2026-01-09", OrderFilters{
		Statuses: []OrderStatus{OrderStatusPending},
		DateFrom: day(1),
		DateTo:   day(9),
	}.ReadableString())
	assert.Equal(t, "..2026-01-09", OrderFilters{DateTo: day(9)}.ReadableString())
}

func TestOrderFilters_Matches(t *testing.T) {
	order := Order{Status: OrderStatusCompleted, CreatedAt: *day(5)}

	tests := []struct {
		name    string
		filters OrderFilters
		want    bool
	}{
		{"no filters", OrderFilters{}, true},
		{"status match", OrderFilters{Statuses: []OrderStatus{OrderStatusPending, OrderStatusCompleted}}, true},
		{"status mismatch", OrderFilters{Statuses: []OrderStatus{OrderStatusPending}}, false},
		{"inside range", OrderFilters{DateFrom: day(1), DateTo: day(9)}, true},
		{"bounds are inclusive", OrderFilters{DateFrom: day(5), DateTo: day(5)}, true},
		{"before range", OrderFilters{DateFrom: day(6)}, false},
		{"after range", OrderFilters{DateTo: day(4)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Matches(order))
		})
	}
}
