package repository

import (
	"context"
	"time"

	"flashbooth/internal/domain/product"
	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/pgconv"
	"flashbooth/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) commands.ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	const query = `
		INSERT INTO products (id, name, description, image_url, price, category, features, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		p.ID(), p.Name(), p.Description(), p.ImageURL(),
		p.Price(), p.Category(), p.Features(), p.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	const query = `
		UPDATE products SET
			name        = $2,
			description = $3,
			image_url   = $4,
			price       = $5,
			category    = $6,
			features    = $7,
			available   = $8,
			updated_at  = now()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		p.ID(), p.Name(), p.Description(), p.ImageURL(),
		p.Price(), p.Category(), p.Features(), p.Available(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET available = $2, updated_at = now() WHERE id = $1`,
		id, available,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set product availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	const query = `
		SELECT id, name, description, image_url, price, category, features, available, created_at, updated_at
		FROM products
		WHERE id = $1`

	var (
		productID            uuid.UUID
		name                 string
		description          pgtype.Text
		imageURL             pgtype.Text
		price                float64
		category             pgtype.Text
		features             []string
		available            bool
		createdAt, updatedAt time.Time
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&productID, &name, &description, &imageURL,
		&price, &category, &features, &available,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product", err)
	}

	return product.ReconstructProduct(
		productID, name,
		pgconv.StringFromPgtype(description),
		pgconv.StringFromPgtype(imageURL),
		price,
		pgconv.StringFromPgtype(category),
		features, available, createdAt, updatedAt,
	), nil
}
