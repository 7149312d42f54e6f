package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/savioruz/reserva/config"
	_ "github.com/savioruz/reserva/docs" // Swagger docs
	addonHandler "github.com/savioruz/reserva/internal/domains/addons/handler"
	authHandler "github.com/savioruz/reserva/internal/domains/auth/handler"
	availabilityHandler "github.com/savioruz/reserva/internal/domains/availability/handler"
	bookingHandler "github.com/savioruz/reserva/internal/domains/bookings/handler"
	paymentHandler "github.com/savioruz/reserva/internal/domains/payments/handler"
	resourceHandler "github.com/savioruz/reserva/internal/domains/resources/handler"
	shiftHandler "github.com/savioruz/reserva/internal/domains/shifts/handler"
	uploadHandler "github.com/savioruz/reserva/internal/domains/uploads/handler"
	userHandler "github.com/savioruz/reserva/internal/domains/user/handler"
	"github.com/savioruz/reserva/pkg/constant"

	"github.com/savioruz/reserva/internal/delivery/http/middleware"
	"github.com/savioruz/reserva/pkg/logger"
)

type Handlers struct {
	Auth         *authHandler.Handler
	User         *userHandler.Handler
	Availability *availabilityHandler.Handler
	Resource     *resourceHandler.Handler
	Shift        *shiftHandler.Handler
	Addon        *addonHandler.Handler
	Booking      *bookingHandler.Handler
	Payment      *paymentHandler.Handler
	Upload       *uploadHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title reserva API
// @description Court and table booking service.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.CORS(cfg))

	if cfg.Metrics.Enabled {
		app.Use(middleware.Metrics())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	if cfg.Upload.Driver == constant.StorageDriverDisk {
		app.Static(constant.UploadPublicRoute, cfg.Upload.Dir, fiber.Static{MaxAge: 86400})
	}

	apiV1Group := app.Group("/v1")
	if cfg.RateLimit.Enabled {
		apiV1Group.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)))
	}
	{
		handlers.Auth.RegisterRoutes(apiV1Group)
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.Availability.RegisterRoutes(apiV1Group)
		handlers.Resource.RegisterRoutes(apiV1Group)
		handlers.Shift.RegisterRoutes(apiV1Group)
		handlers.Addon.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
		handlers.Payment.RegisterRoutes(apiV1Group)
		handlers.Upload.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
