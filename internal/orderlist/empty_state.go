// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package orderlist

import (
	"fmt"

	"github.com/MKhiriev/go-order-keeper/models"
)

// EmptyStateKind selects the empty-state screen.
type EmptyStateKind int

const (
	// EmptyStateNoOrders is shown when the store has no orders at all.
	EmptyStateNoOrders EmptyStateKind = iota
	// EmptyStateNoMatches is shown when no order matches the active filters.
	EmptyStateNoMatches
)

const (
	noOrdersMessage     = "Waiting for your first order"
	noOrdersDetails     = "Explore how you can increase your store sales"
	noOrdersAction      = "Learn more"
	noMatchesMessageFmt = "We're sorry, we couldn't find any order that match %s"
	clearFiltersAction  = "Clear Filters"
)

// EmptyStateConfig describes what the empty state displays.
type EmptyStateConfig struct {
	Kind        EmptyStateKind
	Message     string
	Details     string
	ActionTitle string
	// ShowErrorBanner is set when the list is empty because a sync failed.
	ShowErrorBanner bool
}

// NewEmptyStateConfig picks the empty state for filters.
func NewEmptyStateConfig(filters models.OrderFilters, hasErrorLoadingData bool) EmptyStateConfig {
	if filters.NumberOfActiveFilters() == 0 {
		return EmptyStateConfig{
			Kind:            EmptyStateNoOrders,
			Message:         noOrdersMessage,
			Details:         noOrdersDetails,
			ActionTitle:     noOrdersAction,
			ShowErrorBanner: hasErrorLoadingData,
		}
	}

	return EmptyStateConfig{
		Kind:            EmptyStateNoMatches,
		Message:         fmt.Sprintf(noMatchesMessageFmt, filters.ReadableString()),
		ActionTitle:     clearFiltersAction,
		ShowErrorBanner: hasErrorLoadingData,
	}
}
