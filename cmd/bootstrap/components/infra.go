package components

import (
	"context"

	"flashbooth/internal/infra/cache"
	"flashbooth/internal/infra/readstore"
	"flashbooth/internal/infra/repository"
	"flashbooth/internal/infra/storage"
	"flashbooth/internal/pkg/config"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		// Write-side repositories.
		repository.NewUserRepository,
		repository.NewCustomerRepository,
		repository.NewBookingRepository,
		repository.NewProductRepository,
		repository.NewGalleryRepository,
		repository.NewContactRepository,
		repository.NewAvailabilityRepository,
		// The product and availability repositories also serve the
		// narrower interfaces the booking workflow depends on.
		func(r commands.ProductRepository) commands.ProductSnapshotRepository { return r },
		func(r commands.AvailabilityRepository) commands.AvailabilityChecker { return r },

		// Read-side stores for queries.
		readstore.NewUserReadStore,
		readstore.NewBookingReadStore,
		readstore.NewCustomerReadStore,
		readstore.NewProductReadStore,
		readstore.NewGalleryReadStore,
		readstore.NewContactReadStore,
		readstore.NewAvailabilityReadStore,
		readstore.NewDashboardReadStore,

		storage.NewLocalStorage,
		NewCatalogCache,
	),
)

func NewCatalogCache(lc fx.Lifecycle, cfg config.RedisConfig) queries.CatalogCache {
	catalogCache, cleanup := cache.NewCatalogCache(cfg)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return catalogCache
}
