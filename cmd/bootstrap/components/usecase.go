package components

import (
	"flashbooth/internal/pkg/clock"
	"flashbooth/internal/usecase/commands"
	"flashbooth/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCustomerQueries,
		queries.NewProductQueries,
		queries.NewGalleryQueries,
		queries.NewContactQueries,
		queries.NewAvailabilityQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewBookingCommands,
		commands.NewCustomerCommands,
		commands.NewProductCommands,
		commands.NewGalleryCommands,
		commands.NewContactCommands,
		commands.NewAvailabilityCommands,
	),
)
