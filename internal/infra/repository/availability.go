package repository

import (
	"context"
	"time"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) commands.AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

func (r *AvailabilityRepository) Insert(ctx context.Context, id uuid.UUID, productID *uuid.UUID, date time.Time, reason *string) error {
	const query = `
		INSERT INTO availability_blocks (id, product_id, block_date, reason)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, id, productID, date, reason)
	if err != nil {
		return infra.WrapRepoErr("failed to insert availability block", err)
	}
	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM availability_blocks WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete availability block", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("availability block not found", nil, infra.KindNotFound)
	}
	return nil
}

// IsBlocked matches blocks scoped to the product and fleet-wide blocks with
// no product id.
func (r *AvailabilityRepository) IsBlocked(ctx context.Context, productID uuid.UUID, date time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM availability_blocks
			WHERE block_date = $2
			  AND (product_id = $1 OR product_id IS NULL)
		)`

	var blocked bool
	if err := r.pool.QueryRow(ctx, query, productID, date).Scan(&blocked); err != nil {
		return false, infra.WrapRepoErr("failed to check availability block", err)
	}
	return blocked, nil
}
