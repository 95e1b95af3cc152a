package queries

import "context"

const recentBookingsLimit = 5

type DashboardQueries interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type DashboardReadStore interface {
	Counts(ctx context.Context) (*DashboardStats, error)
	RecentBookings(ctx context.Context, limit int) ([]*BookingListItem, error)
}

type dashboardQueriesImpl struct {
	readStore DashboardReadStore
}

func NewDashboardQueries(readStore DashboardReadStore) DashboardQueries {
	return &dashboardQueriesImpl{readStore: readStore}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context) (*DashboardStats, error) {
	stats, err := q.readStore.Counts(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := q.readStore.RecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	items := make([]BookingListItem, len(recent))
	for i, r := range recent {
		items[i] = *r
	}
	stats.RecentBookings = items
	return stats, nil
}
