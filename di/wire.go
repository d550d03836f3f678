//go:build wireinject
// +build wireinject

package di

import (
	"hoteladmin/config"
	"hoteladmin/infras/jwt"
	"hoteladmin/infras/kafka"
	"hoteladmin/infras/metrics"
	"hoteladmin/infras/otel"
	"hoteladmin/infras/postgres"
	"hoteladmin/infras/redis"
	"hoteladmin/infras/s3"
	"hoteladmin/internal/events"
	"hoteladmin/internal/seed"
	"hoteladmin/permissions"
	"hoteladmin/shared/cache"
	"hoteladmin/transport/http"
	"hoteladmin/transport/http/middleware"
	"hoteladmin/transport/http/router"

	"github.com/google/wire"

	authService "hoteladmin/internal/domains/auth/service"
	hotelRepository "hoteladmin/internal/domains/hotel/repository"
	hotelService "hoteladmin/internal/domains/hotel/service"
	rateAdjustmentRepository "hoteladmin/internal/domains/rateadjustment/repository"
	rateAdjustmentService "hoteladmin/internal/domains/rateadjustment/service"
	roomTypeRepository "hoteladmin/internal/domains/roomtype/repository"
	roomTypeService "hoteladmin/internal/domains/roomtype/service"
	timelineService "hoteladmin/internal/domains/timeline/service"
	userRepository "hoteladmin/internal/domains/user/repository"
	userService "hoteladmin/internal/domains/user/service"
	authHandler "hoteladmin/internal/handlers/auth"
	hotelHandler "hoteladmin/internal/handlers/hotel"
	rateAdjustmentHandler "hoteladmin/internal/handlers/rateadjustment"
	roomTypeHandler "hoteladmin/internal/handlers/roomtype"
	userHandler "hoteladmin/internal/handlers/user"
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
	metrics.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var rateDomain = wire.NewSet(
	hotelRepository.New,
	roomTypeRepository.New,
	rateAdjustmentRepository.New,
	timelineService.New,
	hotelService.New,
	roomTypeService.New,
	rateAdjustmentService.New,
)

var domains = wire.NewSet(
	authDomain,
	rateDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomTypeHandler.New,
	rateAdjustmentHandler.New,
	userHandler.New,
	router.New,
)

var seeding = wire.NewSet(
	userRepository.New,
	hotelRepository.New,
	roomTypeRepository.New,
	rateAdjustmentRepository.New,
	timelineService.New,
	seed.New,
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

func InitializeSeeder() *seed.Seeder {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		metrics.New,
		events.New,
		seeding,
	)

	return &seed.Seeder{}
}
