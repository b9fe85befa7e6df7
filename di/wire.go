//go:build wireinject
// +build wireinject

package di

import (
	"staybook/config"
	"staybook/infras/marketplace"
	"staybook/infras/otel"
	"staybook/infras/postgres"
	"staybook/infras/redis"
	"staybook/shared/cache"
	"staybook/transport/http"
	"staybook/transport/http/middleware"
	"staybook/transport/http/router"

	"github.com/google/wire"

	bookingService "staybook/internal/domains/booking/service"
	bookingHandler "staybook/internal/handlers/booking"

	receiptRepository "staybook/internal/domains/receipt/repository"
	receiptService "staybook/internal/domains/receipt/service"
	receiptHandler "staybook/internal/handlers/receipt"

	sessionService "staybook/internal/domains/session/service"
	sessionHandler "staybook/internal/handlers/session"

	healthHandler "staybook/internal/handlers/health"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	marketplace.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var receiptDomain = wire.NewSet(
	receiptRepository.New,
	receiptService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var sessionDomain = wire.NewSet(
	sessionService.New,
)

var domains = wire.NewSet(
	receiptDomain,
	bookingDomain,
	sessionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	sessionHandler.New,
	bookingHandler.New,
	receiptHandler.New,
	healthHandler.New,
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
