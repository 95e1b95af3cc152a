package repository

import (
	"context"

	"flashbooth/internal/domain/customer"
	"flashbooth/internal/infra"
	"flashbooth/internal/infra/db"
	"flashbooth/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) commands.CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Upsert writes the customer keyed by email in a single statement, so two
// concurrent submissions with the same email cannot race into duplicate rows.
// The later write wins on contact details.
func (r *CustomerRepository) Upsert(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	const query = `
		INSERT INTO customers (id, first_name, last_name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name  = EXCLUDED.last_name,
			phone      = EXCLUDED.phone,
			address    = EXCLUDED.address,
			updated_at = now()
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		c.ID(), c.FirstName(), c.LastName(), c.Email(), c.Phone(), c.Address(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
