package readstore

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.customer_id,
		       c.first_name || ' ' || c.last_name,
		       c.email, c.phone,
		       b.product_id, p.name,
		       to_char(b.event_date, 'YYYY-MM-DD'), b.event_time, b.duration,
		       b.address, b.event_type, b.guests_count, b.special_requests,
		       b.total_price, b.status, b.deposit_paid, b.full_payment_paid,
		       b.deposit_amount, b.paid_amount, b.created_at, b.updated_at
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN products p ON p.id = b.product_id
		WHERE b.id = $1`

	var v queries.BookingView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CustomerID, &v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
		&v.ProductID, &v.ProductName,
		&v.EventDate, &v.EventTime, &v.Duration,
		&v.Address, &v.EventType, &v.GuestsCount, &v.SpecialRequests,
		&v.TotalPrice, &v.Status, &v.DepositPaid, &v.FullPaymentPaid,
		&v.DepositAmount, &v.PaidAmount, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &v, nil
}

func (s *BookingReadStore) FindAll(ctx context.Context, status string) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id,
		       c.first_name || ' ' || c.last_name,
		       c.email, p.name,
		       to_char(b.event_date, 'YYYY-MM-DD'), b.event_time, b.duration,
		       b.event_type, b.total_price, b.status, b.deposit_paid, b.created_at
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN products p ON p.id = b.product_id
		WHERE ($1 = '' OR b.status = $1)
		ORDER BY b.event_date DESC, b.event_time DESC`

	rows, err := s.pool.Query(ctx, query, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()
	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		err := rows.Scan(
			&item.ID, &item.CustomerName, &item.CustomerEmail, &item.ProductName,
			&item.EventDate, &item.EventTime, &item.Duration,
			&item.EventType, &item.TotalPrice, &item.Status, &item.DepositPaid,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return items, nil
}
