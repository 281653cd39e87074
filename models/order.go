// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OrderStatus is the status slug of an order as reported by the store.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
)

// Order is a single store order as cached by the client.
type Order struct {
	// StoreID is the store the order belongs to.
	StoreID int64 `json:"store_id"`
	// OrderID is the server-side identifier of the order.
	OrderID int64 `json:"order_id"`
	// Number is the human-readable order number.
	Number string `json:"number"`
	// Status is the current order status.
	Status OrderStatus `json:"status"`
	// Currency is the ISO currency code of Total.
	Currency string `json:"currency"`
	// Total is the order total formatted as a decimal string.
	Total string `json:"total"`
	// CustomerName is the billing name shown in the list.
	CustomerName string `json:"customer_name"`
	// CreatedAt is when the order was placed.
	CreatedAt time.Time `json:"date_created"`
	// ModifiedAt is when the order was last changed on the server.
	ModifiedAt time.Time `json:"date_modified"`
}

// OrdersPage is a single page of orders returned by the orders API.
type OrdersPage struct {
	// Orders holds the orders on this page.
	Orders []Order `json:"orders"`
	// Page is the 1-based page number.
	Page int `json:"page"`
	// PageSize is the requested page size.
	PageSize int `json:"per_page"`
	// Total is the total number of orders matching the request filters.
	Total int `json:"total"`
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusOnHold,
		OrderStatusCompleted,
		OrderStatusCancelled,
		OrderStatusRefunded,
		OrderStatusFailed:
		return true
	}
	return false
}

// AllOrderStatuses lists every known status in display order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusOnHold,
		OrderStatusCompleted,
		OrderStatusCancelled,
		OrderStatusRefunded,
		OrderStatusFailed,
	}
}

// OrdersQuery is a page request as received by the orders API.
type OrdersQuery struct {
	Page    int
	PerPage int
	Filters OrderFilters
}
