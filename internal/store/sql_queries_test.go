// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/models"
)

func Test_buildDeleteStoreOrdersQuery(t *testing.T) {
	query, args, err := buildDeleteStoreOrdersQuery(7)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM orders WHERE store_id = ?", query)
	assert.Equal(t, []any{int64(7)}, args)
}

func Test_buildCountOrdersQuery(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filters  models.OrderFilters
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no filters",
			filters:  models.OrderFilters{},
			wantSQL:  "SELECT COUNT(*) FROM orders WHERE (store_id = ?)",
			wantArgs: []any{int64(3)},
		},
		{
			name: "statuses",
			filters: models.OrderFilters{
				Statuses: []models.OrderStatus{models.OrderStatusProcessing, models.OrderStatusOnHold},
			},
			wantSQL:  "SELECT COUNT(*) FROM orders WHERE (store_id = ? AND status IN (?,?))",
			wantArgs: []any{int64(3), "processing", "on-hold"},
		},
		{
			name:     "date range",
			filters:  models.OrderFilters{DateFrom: &from, DateTo: &to},
			wantSQL:  "SELECT COUNT(*) FROM orders WHERE (store_id = ? AND created_at >= ? AND created_at <= ?)",
			wantArgs: []any{int64(3), from, to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildCountOrdersQuery(3, tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildListOrdersQuery(t *testing.T) {
	t.Run("with window", func(t *testing.T) {
		query, args, err := buildListOrdersQuery(3, models.OrderFilters{}, 25, 50)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(query, "SELECT store_id, order_id, number, status"))
		assert.Contains(t, query, "FROM orders WHERE (store_id = ?)")
		assert.Contains(t, query, "ORDER BY created_at DESC, order_id DESC")
		assert.Contains(t, query, "LIMIT 25")
		assert.Contains(t, query, "OFFSET 50")
		assert.Equal(t, []any{int64(3)}, args)
	})

	t.Run("zero limit lists everything", func(t *testing.T) {
		query, _, err := buildListOrdersQuery(3, models.OrderFilters{}, 0, 10)
		require.NoError(t, err)
		assert.NotContains(t, query, "LIMIT")
		assert.NotContains(t, query, "OFFSET")
	})
}

func Test_buildUpsertOrdersQuery(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))
	orders := []models.Order{
		{OrderID: 1, Number: "1", Status: models.OrderStatusPending, CreatedAt: created, ModifiedAt: created},
		{OrderID: 2, Number: "2", Status: models.OrderStatusCompleted, CreatedAt: created, ModifiedAt: created},
	}

	query, args, err := buildUpsertOrdersQuery(9, orders)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO orders (store_id,order_id,number,status,currency,total,customer_name,created_at,modified_at) VALUES (?,?,?,?,?,?,?,?,?),(?,?,?,?,?,?,?,?,?)"))
	assert.Contains(t, query, "ON CONFLICT(store_id, order_id) DO UPDATE SET")
	require.Len(t, args, 18)
	assert.Equal(t, int64(9), args[0])
	assert.Equal(t, int64(2), args[10])
	assert.Equal(t, "completed", args[12])
	assert.Equal(t, time.UTC, args[7].(time.Time).Location())
}

func Test_buildUpsertOrdersQuery_Empty(t *testing.T) {
	_, _, err := buildUpsertOrdersQuery(9, nil)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}
