package readstore

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) queries.UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthorizedUserView
	err := s.pool.QueryRow(ctx, query, id).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &v, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		v    queries.AuthorizedUserView
		hash string
	)
	err := s.pool.QueryRow(ctx, query, email).Scan(&v.ID, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}

func (s *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	const query = `
		SELECT id, email, full_name, role, is_active, last_login_at, created_at
		FROM users
		ORDER BY created_at`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]*queries.UserView, 0)
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.Email, &v.FullName, &v.Role, &v.IsActive, &v.LastLoginAt, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read users", err)
	}
	return views, nil
}
