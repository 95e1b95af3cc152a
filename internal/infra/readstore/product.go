package readstore

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) queries.ProductReadStore {
	return &ProductReadStore{pool: pool}
}

const productColumns = `
	id, name, COALESCE(description, ''), COALESCE(image_url, ''),
	price, COALESCE(category, ''), COALESCE(features, '{}'), available,
	created_at, updated_at`

func (s *ProductReadStore) FindAvailable(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE available ORDER BY price ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available products", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	view, err := scanProduct(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return view, nil
}

func scanProduct(row pgx.Row) (*queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.ImageURL,
		&v.Price, &v.Category, &v.Features, &v.Available,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanProducts(rows pgx.Rows) ([]*queries.ProductView, error) {
	views := make([]*queries.ProductView, 0)
	for rows.Next() {
		v, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read products", err)
	}
	return views, nil
}
