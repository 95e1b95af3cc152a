package components

import (
	"flashbooth/internal/handler"
	"flashbooth/internal/handler/api"
	"flashbooth/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewProductHandler,
		api.NewGalleryHandler,
		api.NewContactHandler,
		api.NewCustomerHandler,
		api.NewDashboardHandler,
		api.NewUserHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	product *api.ProductHandler,
	gallery *api.GalleryHandler,
	contact *api.ContactHandler,
	customer *api.CustomerHandler,
	dashboard *api.DashboardHandler,
	user *api.UserHandler,
	availability *api.AvailabilityHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Booking:      booking,
		Product:      product,
		Gallery:      gallery,
		Contact:      contact,
		Customer:     customer,
		Dashboard:    dashboard,
		User:         user,
		Availability: availability,
	}
}
