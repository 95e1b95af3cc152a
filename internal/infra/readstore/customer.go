package readstore

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) queries.CustomerReadStore {
	return &CustomerReadStore{pool: pool}
}

func (s *CustomerReadStore) FindAll(ctx context.Context) ([]*queries.CustomerListItem, error) {
	const query = `
		SELECT c.id, c.first_name, c.last_name, c.email, c.phone, c.address,
		       COUNT(b.id), c.created_at
		FROM customers c
		LEFT JOIN bookings b ON b.customer_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	items := make([]*queries.CustomerListItem, 0)
	for rows.Next() {
		var item queries.CustomerListItem
		err := rows.Scan(
			&item.ID, &item.FirstName, &item.LastName, &item.Email,
			&item.Phone, &item.Address, &item.BookingsCount, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customers", err)
	}
	return items, nil
}

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	const customerQuery = `
		SELECT id, first_name, last_name, email, phone, address, created_at
		FROM customers
		WHERE id = $1`

	var v queries.CustomerView
	err := s.pool.QueryRow(ctx, customerQuery, id).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Email, &v.Phone, &v.Address, &v.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}

	const bookingsQuery = `
		SELECT b.id,
		       c.first_name || ' ' || c.last_name,
		       c.email, p.name,
		       to_char(b.event_date, 'YYYY-MM-DD'), b.event_time, b.duration,
		       b.event_type, b.total_price, b.status, b.deposit_paid, b.created_at
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN products p ON p.id = b.product_id
		WHERE b.customer_id = $1
		ORDER BY b.event_date DESC`

	rows, err := s.pool.Query(ctx, bookingsQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer bookings", err)
	}
	defer rows.Close()

	items, err := scanBookingListItems(rows)
	if err != nil {
		return nil, err
	}

	v.Bookings = make([]queries.BookingListItem, 0, len(items))
	for _, item := range items {
		v.Bookings = append(v.Bookings, *item)
	}
	return &v, nil
}
