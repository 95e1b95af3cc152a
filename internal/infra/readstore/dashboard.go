package readstore

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardReadStore struct {
	pool *pgxpool.Pool
}

func NewDashboardReadStore(pool *pgxpool.Pool) queries.DashboardReadStore {
	return &DashboardReadStore{pool: pool}
}

// Counts gathers the headline numbers in one round trip. Revenue sums the
// quoted price of every booking that is not cancelled.
func (s *DashboardReadStore) Counts(ctx context.Context) (*queries.DashboardStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE status = 'pending'),
			(SELECT COUNT(*) FROM bookings WHERE status = 'confirmed'),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM contact_messages WHERE status = 'new'),
			(SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status <> 'cancelled')`

	var stats queries.DashboardStats
	err := s.pool.QueryRow(ctx, query).Scan(
		&stats.TotalBookings, &stats.PendingBookings, &stats.ConfirmedBookings,
		&stats.TotalCustomers, &stats.NewMessages, &stats.Revenue,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard counts", err)
	}
	return &stats, nil
}

func (s *DashboardReadStore) RecentBookings(ctx context.Context, limit int) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT b.id,
		       c.first_name || ' ' || c.last_name,
		       c.email, p.name,
		       to_char(b.event_date, 'YYYY-MM-DD'), b.event_time, b.duration,
		       b.event_type, b.total_price, b.status, b.deposit_paid, b.created_at
		FROM bookings b
		JOIN customers c ON c.id = b.customer_id
		JOIN products p ON p.id = b.product_id
		ORDER BY b.created_at DESC
		LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent bookings", err)
	}
	defer rows.Close()
	return scanBookingListItems(rows)
}
