package repository

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) commands.ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Insert(ctx context.Context, id uuid.UUID, name, email string, phone *string, message string) error {
	const query = `
		INSERT INTO contact_messages (id, name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, $5, 'new')`

	_, err := r.pool.Exec(ctx, query, id, name, email, phone, message)
	if err != nil {
		return infra.WrapRepoErr("failed to insert contact message", err)
	}
	return nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update message status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("contact message not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete contact message", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("contact message not found", nil, infra.KindNotFound)
	}
	return nil
}
