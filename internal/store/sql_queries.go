// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-order-keeper/models"
)

const ordersTable = "orders"

var orderColumns = []string{
	"store_id",
	"order_id",
	"number",
	"status",
	"currency",
	"total",
	"customer_name",
	"created_at",
	"modified_at",
}

const upsertOrderSuffix = `ON CONFLICT(store_id, order_id) DO UPDATE SET
	number        = excluded.number,
	status        = excluded.status,
	currency      = excluded.currency,
	total         = excluded.total,
	customer_name = excluded.customer_name,
	created_at    = excluded.created_at,
	modified_at   = excluded.modified_at`

// psql is the statement builder for SQLite's "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildDeleteStoreOrdersQuery(storeID int64) (string, []any, error) {
	query, args, err := psql.Delete(ordersTable).
		Where(sq.Eq{"store_id": storeID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertOrdersQuery builds one multi-row INSERT ... ON CONFLICT for all
// orders. orders must not be empty.
func buildUpsertOrdersQuery(storeID int64, orders []models.Order) (string, []any, error) {
	if len(orders) == 0 {
		return "", nil, fmt.Errorf("%w: no orders to insert", ErrBuildingSQLQuery)
	}

	builder := psql.Insert(ordersTable).Columns(orderColumns...)
	for _, o := range orders {
		builder = builder.Values(
			storeID,
			o.OrderID,
			o.Number,
			string(o.Status),
			o.Currency,
			o.Total,
			o.CustomerName,
			o.CreatedAt.UTC(),
			o.ModifiedAt.UTC(),
		)
	}

	query, args, err := builder.Suffix(upsertOrderSuffix).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountOrdersQuery(storeID int64, filters models.OrderFilters) (string, []any, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(ordersTable).
		Where(ordersPredicate(storeID, filters)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListOrdersQuery selects a window of cached orders, newest first. A
// zero limit means no limit.
func buildListOrdersQuery(storeID int64, filters models.OrderFilters, limit, offset uint64) (string, []any, error) {
	builder := psql.Select(orderColumns...).
		From(ordersTable).
		Where(ordersPredicate(storeID, filters)).
		OrderBy("created_at DESC", "order_id DESC")

	if limit > 0 {
		builder = builder.Limit(limit).Offset(offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func ordersPredicate(storeID int64, filters models.OrderFilters) sq.And {
	where := sq.And{sq.Eq{"store_id": storeID}}

	if len(filters.Statuses) > 0 {
		statuses := make([]string, 0, len(filters.Statuses))
		for _, s := range filters.Statuses {
			statuses = append(statuses, string(s))
		}
		where = append(where, sq.Eq{"status": statuses})
	}
	if filters.DateFrom != nil {
		where = append(where, sq.GtOrEq{"created_at": filters.DateFrom.UTC()})
	}
	if filters.DateTo != nil {
		where = append(where, sq.LtOrEq{"created_at": filters.DateTo.UTC()})
	}

	return where
}
