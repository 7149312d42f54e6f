//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/savioruz/reserva/config"
	"github.com/savioruz/reserva/internal/delivery/http"

	authHandler "github.com/savioruz/reserva/internal/domains/auth/handler"
	authService "github.com/savioruz/reserva/internal/domains/auth/service"

	userHandler "github.com/savioruz/reserva/internal/domains/user/handler"
	userRepository "github.com/savioruz/reserva/internal/domains/user/repository"
	userService "github.com/savioruz/reserva/internal/domains/user/service"

	resourceHandler "github.com/savioruz/reserva/internal/domains/resources/handler"
	resourceRepository "github.com/savioruz/reserva/internal/domains/resources/repository"
	resourceService "github.com/savioruz/reserva/internal/domains/resources/service"

	shiftHandler "github.com/savioruz/reserva/internal/domains/shifts/handler"
	shiftRepository "github.com/savioruz/reserva/internal/domains/shifts/repository"
	shiftService "github.com/savioruz/reserva/internal/domains/shifts/service"

	addonHandler "github.com/savioruz/reserva/internal/domains/addons/handler"
	addonRepository "github.com/savioruz/reserva/internal/domains/addons/repository"
	addonService "github.com/savioruz/reserva/internal/domains/addons/service"

	availabilityHandler "github.com/savioruz/reserva/internal/domains/availability/handler"
	availabilityService "github.com/savioruz/reserva/internal/domains/availability/service"

	bookingHandler "github.com/savioruz/reserva/internal/domains/bookings/handler"
	bookingRepository "github.com/savioruz/reserva/internal/domains/bookings/repository"
	bookingService "github.com/savioruz/reserva/internal/domains/bookings/service"

	paymentHandler "github.com/savioruz/reserva/internal/domains/payments/handler"
	paymentService "github.com/savioruz/reserva/internal/domains/payments/service"

	uploadHandler "github.com/savioruz/reserva/internal/domains/uploads/handler"
	uploadService "github.com/savioruz/reserva/internal/domains/uploads/service"

	"github.com/savioruz/reserva/pkg/clock"
	"github.com/savioruz/reserva/pkg/xendit"
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	userHandler.New,
	wire.Bind(new(userRepository.Querier), new(*userRepository.Queries)),
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceService.New,
	resourceHandler.New,
	wire.Bind(new(resourceRepository.Querier), new(*resourceRepository.Queries)),
)

var shiftDomain = wire.NewSet(
	shiftRepository.New,
	shiftService.New,
	shiftHandler.New,
	wire.Bind(new(shiftRepository.Querier), new(*shiftRepository.Queries)),
)

var addonDomain = wire.NewSet(
	addonRepository.New,
	addonService.New,
	addonHandler.New,
	wire.Bind(new(addonRepository.Querier), new(*addonRepository.Queries)),
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
	availabilityHandler.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingService.NewSchedulerService,
	bookingHandler.New,
	wire.Bind(new(bookingRepository.Querier), new(*bookingRepository.Queries)),
	wire.Bind(new(bookingRepository.Repository), new(*bookingRepository.Queries)),
)

var paymentDomain = wire.NewSet(
	xendit.New,
	paymentService.New,
	paymentHandler.New,
)

var uploadDomain = wire.NewSet(
	provideStorage,
	uploadService.New,
	uploadHandler.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	resourceDomain,
	shiftDomain,
	addonDomain,
	availabilityDomain,
	bookingDomain,
	paymentDomain,
	uploadDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideMailer,
		clock.NewRealClock,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
