package queries

import "context"

type AvailabilityQueries interface {
	List(ctx context.Context) ([]*AvailabilityBlockView, error)
}

type AvailabilityReadStore interface {
	FindAll(ctx context.Context) ([]*AvailabilityBlockView, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
}

func NewAvailabilityQueries(readStore AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{readStore: readStore}
}

func (q *availabilityQueriesImpl) List(ctx context.Context) ([]*AvailabilityBlockView, error) {
	return q.readStore.FindAll(ctx)
}
