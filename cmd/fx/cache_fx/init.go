package cache_fx

import (
	"go.uber.org/fx"

	"tripweave/internal/infra"
	"tripweave/internal/services"
	"tripweave/pkg/logger"
)

var Module = fx.Provide(provideItineraryCache)

func provideItineraryCache(log logger.Logger) services.ItineraryCache {
	if client := infra.InitRedis(); client != nil {
		log.Info("using redis itinerary cache")
		return services.NewRedisItineraryCache(client)
	}
	return services.NewInMemoryItineraryCache()
}
