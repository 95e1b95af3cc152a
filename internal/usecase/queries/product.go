package queries

import (
	"context"

	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrProductNotFound = errs.New("product not found")

type ProductQueries interface {
	// ListAvailable is the public catalog: available products, cheapest first.
	ListAvailable(ctx context.Context) ([]*ProductView, error)
	// ListAll is the back-office view including unavailable products.
	ListAll(ctx context.Context) ([]*ProductView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type ProductReadStore interface {
	FindAvailable(ctx context.Context) ([]*ProductView, error)
	FindAll(ctx context.Context) ([]*ProductView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

// CatalogCache fronts the public catalog listing. A nil-safe no-op
// implementation is used when no cache backend is configured.
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]*ProductView, bool)
	SetCatalog(ctx context.Context, products []*ProductView)
	InvalidateCatalog(ctx context.Context)
}

type productQueriesImpl struct {
	readStore ProductReadStore
	cache     CatalogCache
}

func NewProductQueries(readStore ProductReadStore, cache CatalogCache) ProductQueries {
	return &productQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *productQueriesImpl) ListAvailable(ctx context.Context) ([]*ProductView, error) {
	if products, ok := q.cache.GetCatalog(ctx); ok {
		return products, nil
	}

	products, err := q.readStore.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}

	q.cache.SetCatalog(ctx, products)
	return products, nil
}

func (q *productQueriesImpl) ListAll(ctx context.Context) ([]*ProductView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return view, nil
}
