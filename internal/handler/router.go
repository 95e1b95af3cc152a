package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flashbooth/internal/domain/user"
	"flashbooth/internal/handler/api"
	"flashbooth/internal/handler/middleware"
	"flashbooth/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Product      *api.ProductHandler
	Gallery      *api.GalleryHandler
	Contact      *api.ContactHandler
	Customer     *api.CustomerHandler
	Dashboard    *api.DashboardHandler
	User         *api.UserHandler
	Availability *api.AvailabilityHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	metrics *middleware.Metrics,
) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, cfg, handlers, authMiddleware, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	metrics *middleware.Metrics,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", metrics.Handler())
	engine.Static(cfg.Storage.BaseURL, cfg.Storage.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public booking funnel and marketing pages.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Product.ListAvailable},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Product.GetByID},
			{Method: http.MethodGet, Path: "/bookings/quote", Handler: h.Booking.Quote},
			{Method: http.MethodPost, Path: "/bookings/validate", Handler: h.Booking.ValidateStep},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Submit},
			{Method: http.MethodGet, Path: "/gallery", Handler: h.Gallery.ListPublic},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPatch, Path: "/profile", Handler: h.User.UpdateProfile},
			})
		}

		// Back office: staff can work bookings, messages and the gallery.
		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Stats},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.GetByID},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateStatus},
				{Method: http.MethodPatch, Path: "/bookings/:id/payment", Handler: h.Booking.UpdatePayment},
				{Method: http.MethodGet, Path: "/customers", Handler: h.Customer.List},
				{Method: http.MethodGet, Path: "/customers/export", Handler: h.Customer.Export},
				{Method: http.MethodGet, Path: "/customers/:id", Handler: h.Customer.GetByID},
				{Method: http.MethodGet, Path: "/products", Handler: h.Product.ListAll},
				{Method: http.MethodGet, Path: "/gallery", Handler: h.Gallery.ListAll},
				{Method: http.MethodPost, Path: "/gallery", Handler: h.Gallery.Upload},
				{Method: http.MethodPatch, Path: "/gallery/:id", Handler: h.Gallery.Update},
				{Method: http.MethodDelete, Path: "/gallery/:id", Handler: h.Gallery.Delete},
				{Method: http.MethodGet, Path: "/gallery/tags", Handler: h.Gallery.ListTags},
				{Method: http.MethodPost, Path: "/gallery/tags", Handler: h.Gallery.CreateTag},
				{Method: http.MethodDelete, Path: "/gallery/tags/:id", Handler: h.Gallery.DeleteTag},
				{Method: http.MethodGet, Path: "/messages", Handler: h.Contact.List},
				{Method: http.MethodGet, Path: "/messages/:id", Handler: h.Contact.GetByID},
				{Method: http.MethodPatch, Path: "/messages/:id/status", Handler: h.Contact.UpdateStatus},
				{Method: http.MethodDelete, Path: "/messages/:id", Handler: h.Contact.Delete},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.List},
				{Method: http.MethodPost, Path: "/availability", Handler: h.Availability.Create},
				{Method: http.MethodDelete, Path: "/availability/:id", Handler: h.Availability.Delete},
			})

			// Catalog edits, account management and destructive operations
			// stay admin-only.
			adminOnly := admin.Group("")
			adminOnly.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "/products", Handler: h.Product.Create},
				{Method: http.MethodPut, Path: "/products/:id", Handler: h.Product.Update},
				{Method: http.MethodPatch, Path: "/products/:id/availability", Handler: h.Product.SetAvailability},
				{Method: http.MethodDelete, Path: "/products/:id", Handler: h.Product.Delete},
				{Method: http.MethodDelete, Path: "/customers/:id", Handler: h.Customer.Delete},
				{Method: http.MethodGet, Path: "/users", Handler: h.User.List},
				{Method: http.MethodPost, Path: "/users", Handler: h.User.Create},
				{Method: http.MethodPatch, Path: "/users/:id/active", Handler: h.User.SetActive},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
