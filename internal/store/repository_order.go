// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

// maxOrdersPerInsert keeps a multi-row INSERT well below SQLite's host
// parameter limit.
const maxOrdersPerInsert = 100

// orderRepository is the SQLite-backed [OrderRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database calls are traced with the store_id of
// the request.
type orderRepository struct {
	*DB
	logger *logger.Logger
}

// NewOrderRepository constructs an [OrderRepository] on top of db.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	return &orderRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceOrders deletes the store's cached orders and inserts orders inside
// one transaction, so readers never observe a half-replaced cache.
func (r *orderRepository) ReplaceOrders(ctx context.Context, storeID int64, orders []models.Order) error {
	log := logger.FromContext(ctx)

	if err := checkOrders(storeID, orders); err != nil {
		return err
	}

	deleteQuery, deleteArgs, err := buildDeleteStoreOrdersQuery(storeID)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.ReplaceOrders").
			Int64("store_id", storeID).
			Msg("failed to begin transaction")
		return r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.ReplaceOrders").
			Int64("store_id", storeID).
			Msg("failed to delete cached orders")
		return r.wrap(ErrExecutingStatement, err)
	}
	deleted, _ := res.RowsAffected()

	if err := r.insertOrders(ctx, tx, storeID, orders); err != nil {
		log.Err(err).
			Str("func", "orderRepository.ReplaceOrders").
			Int64("store_id", storeID).
			Int("orders_count", len(orders)).
			Msg("failed to insert orders")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "orderRepository.ReplaceOrders").
			Int64("store_id", storeID).
			Msg("failed to commit transaction")
		return r.wrap(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "orderRepository.ReplaceOrders").
		Int64("store_id", storeID).
		Int64("deleted", deleted).
		Int("inserted", len(orders)).
		Msg("order cache replaced")

	return nil
}

// UpsertOrders saves orders, overwriting cached copies with the same id.
func (r *orderRepository) UpsertOrders(ctx context.Context, storeID int64, orders []models.Order) error {
	log := logger.FromContext(ctx)

	if err := checkOrders(storeID, orders); err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.UpsertOrders").
			Int64("store_id", storeID).
			Msg("failed to begin transaction")
		return r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := r.insertOrders(ctx, tx, storeID, orders); err != nil {
		log.Err(err).
			Str("func", "orderRepository.UpsertOrders").
			Int64("store_id", storeID).
			Int("orders_count", len(orders)).
			Msg("failed to upsert orders")
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "orderRepository.UpsertOrders").
			Int64("store_id", storeID).
			Msg("failed to commit transaction")
		return r.wrap(ErrCommitingTransaction, err)
	}

	return nil
}

func (r *orderRepository) insertOrders(ctx context.Context, tx *sql.Tx, storeID int64, orders []models.Order) error {
	for start := 0; start < len(orders); start += maxOrdersPerInsert {
		end := min(start+maxOrdersPerInsert, len(orders))

		query, args, err := buildUpsertOrdersQuery(storeID, orders[start:end])
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.wrap(ErrExecutingStatement, err)
		}
	}
	return nil
}

// CountOrders counts cached orders matching filters.
func (r *orderRepository) CountOrders(ctx context.Context, storeID int64, filters models.OrderFilters) (int, error) {
	log := logger.FromContext(ctx)

	if storeID <= 0 {
		return 0, ErrInvalidStoreID
	}

	query, args, err := buildCountOrdersQuery(storeID, filters)
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "orderRepository.CountOrders").
			Int64("store_id", storeID).
			Msg("failed to count cached orders")
		return 0, r.wrap(ErrExecutingQuery, err)
	}

	return count, nil
}

// ListOrders returns cached orders matching filters, newest first.
func (r *orderRepository) ListOrders(ctx context.Context, storeID int64, filters models.OrderFilters, limit, offset uint64) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	if storeID <= 0 {
		return nil, ErrInvalidStoreID
	}

	query, args, err := buildListOrdersQuery(storeID, filters, limit, offset)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "orderRepository.ListOrders").
			Int64("store_id", storeID).
			Msg("failed to query cached orders")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, limit)
	for rows.Next() {
		var (
			o      models.Order
			status string
		)
		if err := rows.Scan(
			&o.StoreID,
			&o.OrderID,
			&o.Number,
			&status,
			&o.Currency,
			&o.Total,
			&o.CustomerName,
			&o.CreatedAt,
			&o.ModifiedAt,
		); err != nil {
			log.Err(err).
				Str("func", "orderRepository.ListOrders").
				Int64("store_id", storeID).
				Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		o.Status = models.OrderStatus(status)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "orderRepository.ListOrders").
			Int64("store_id", storeID).
			Msg("error iterating order rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

func checkOrders(storeID int64, orders []models.Order) error {
	if storeID <= 0 {
		return ErrInvalidStoreID
	}
	for _, o := range orders {
		if o.StoreID != 0 && o.StoreID != storeID {
			return fmt.Errorf("%w: order %d has store %d, want %d", ErrOrderStoreMismatch, o.OrderID, o.StoreID, storeID)
		}
	}
	return nil
}
