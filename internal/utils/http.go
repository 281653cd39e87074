// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-order-keeper/models"
)

// TotalCountHeader carries the number of orders matching a list query.
const TotalCountHeader = "X-Total-Count"

// WriteJSON writes data as a JSON body with statusCode. When data cannot be
// marshaled the client gets a plain 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteData writes data under the "data" key of the response document.
func WriteData[T any](w http.ResponseWriter, data T, statusCode int) (int, error) {
	return WriteJSON(w, models.DataEnvelope[T]{Data: data}, statusCode)
}

// WriteOrdersPage writes the orders of page as a JSON array and the number of
// matching orders in [TotalCountHeader]. An empty page is written as [].
func WriteOrdersPage(w http.ResponseWriter, page models.OrdersPage) (int, error) {
	orders := page.Orders
	if orders == nil {
		orders = []models.Order{}
	}

	w.Header().Set(TotalCountHeader, strconv.Itoa(page.Total))
	return WriteJSON(w, orders, http.StatusOK)
}
