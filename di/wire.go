//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"royalpalace/config"
	"royalpalace/infras/jwt"
	"royalpalace/infras/kafka"
	"royalpalace/infras/mailer"
	"royalpalace/infras/otel"
	"royalpalace/infras/postgres"
	"royalpalace/infras/redis"
	"royalpalace/infras/s3"
	"royalpalace/internal/events"
	"royalpalace/internal/notifier"
	"royalpalace/permissions"
	"royalpalace/shared/cache"
	"royalpalace/transport/http"
	"royalpalace/transport/http/middleware"
	"royalpalace/transport/http/router"

	authService "royalpalace/internal/domains/auth/service"
	bookingRepository "royalpalace/internal/domains/booking/repository"
	bookingService "royalpalace/internal/domains/booking/service"
	contactRepository "royalpalace/internal/domains/contact/repository"
	contactService "royalpalace/internal/domains/contact/service"
	paymentRepository "royalpalace/internal/domains/payment/repository"
	paymentService "royalpalace/internal/domains/payment/service"
	roomRepository "royalpalace/internal/domains/room/repository"
	roomService "royalpalace/internal/domains/room/service"
	roomTypeRepository "royalpalace/internal/domains/roomtype/repository"
	roomTypeService "royalpalace/internal/domains/roomtype/service"
	userRepository "royalpalace/internal/domains/user/repository"
	userService "royalpalace/internal/domains/user/service"

	authHandler "royalpalace/internal/handlers/auth"
	bookingHandler "royalpalace/internal/handlers/booking"
	contactHandler "royalpalace/internal/handlers/contact"
	roomHandler "royalpalace/internal/handlers/room"
	roomTypeHandler "royalpalace/internal/handlers/roomtype"
	userHandler "royalpalace/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var catalogDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	paymentRepository.New,
	paymentService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	authDomain,
	catalogDomain,
	bookingDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	bookingHandler.New,
	contactHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeNotifier() *notifier.Notifier {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		mailer.New,
		notifier.New,
	)

	return &notifier.Notifier{}
}
