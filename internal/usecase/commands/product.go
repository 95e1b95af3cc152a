package commands

import (
	"context"

	"github.com/google/uuid"

	"flashbooth/internal/domain/product"
	reqdto "flashbooth/internal/handler/dto/request"
	"flashbooth/internal/infra"
	"flashbooth/internal/pkg/errs"
	"flashbooth/internal/usecase/queries"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrProductInUse    = errs.New("product has bookings and cannot be deleted")
)

type ProductRepository interface {
	ProductSnapshotRepository
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductCommands interface {
	Create(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) (*queries.ProductView, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	productRepo    ProductRepository
	productQueries queries.ProductQueries
	cache          queries.CatalogCache
}

func NewProductCommands(productRepo ProductRepository, productQueries queries.ProductQueries, cache queries.CatalogCache) ProductCommands {
	return &productCommandsImpl{
		productRepo:    productRepo,
		productQueries: productQueries,
		cache:          cache,
	}
}

func (p *productCommandsImpl) Create(ctx context.Context, req reqdto.CreateProductRequest) (*queries.ProductView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	if err := p.productRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	p.invalidateCatalog(ctx)
	return p.productQueries.GetByID(ctx, entity.ID())
}

func (p *productCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateProductRequest) (*queries.ProductView, error) {
	existing, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	updated := product.ReconstructProduct(
		existing.ID(), req.Name, req.Description, req.ImageURL,
		req.Price, req.Category, req.Features, req.Available,
		existing.CreatedAt(), existing.UpdatedAt(),
	)

	if err := p.productRepo.Update(ctx, updated); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	p.invalidateCatalog(ctx)
	return p.productQueries.GetByID(ctx, id)
}

func (p *productCommandsImpl) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	if err := p.productRepo.SetAvailability(ctx, id, available); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	p.invalidateCatalog(ctx)
	return nil
}

// Delete refuses when bookings still reference the product; the back office
// should mark it unavailable instead.
func (p *productCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := p.productRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrProductNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrProductInUse
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	p.invalidateCatalog(ctx)
	return nil
}

func (p *productCommandsImpl) invalidateCatalog(ctx context.Context) {
	p.cache.InvalidateCatalog(ctx)
}
