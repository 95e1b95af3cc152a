package readstore

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityReadStore struct {
	pool *pgxpool.Pool
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) queries.AvailabilityReadStore {
	return &AvailabilityReadStore{pool: pool}
}

func (s *AvailabilityReadStore) FindAll(ctx context.Context) ([]*queries.AvailabilityBlockView, error) {
	const query = `
		SELECT id, product_id, to_char(block_date, 'YYYY-MM-DD'), reason, created_at
		FROM availability_blocks
		ORDER BY block_date`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability blocks", err)
	}
	defer rows.Close()

	views := make([]*queries.AvailabilityBlockView, 0)
	for rows.Next() {
		var v queries.AvailabilityBlockView
		if err := rows.Scan(&v.ID, &v.ProductID, &v.BlockDate, &v.Reason, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability block", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read availability blocks", err)
	}
	return views, nil
}
