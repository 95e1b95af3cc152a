package readstore

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactReadStore struct {
	pool *pgxpool.Pool
}

func NewContactReadStore(pool *pgxpool.Pool) queries.ContactReadStore {
	return &ContactReadStore{pool: pool}
}

func (s *ContactReadStore) FindAll(ctx context.Context, status string) ([]*queries.ContactMessageView, error) {
	const query = `
		SELECT id, name, email, phone, message, status, created_at
		FROM contact_messages
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contact messages", err)
	}
	defer rows.Close()

	views := make([]*queries.ContactMessageView, 0)
	for rows.Next() {
		var v queries.ContactMessageView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Message, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contact message", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read contact messages", err)
	}
	return views, nil
}

func (s *ContactReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ContactMessageView, error) {
	const query = `
		SELECT id, name, email, phone, message, status, created_at
		FROM contact_messages
		WHERE id = $1`

	var v queries.ContactMessageView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Phone, &v.Message, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find contact message", err)
	}
	return &v, nil
}
