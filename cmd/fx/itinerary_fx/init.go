package itinerary_fx

import (
	"go.uber.org/fx"

	"tripweave/internal/services"
	"tripweave/pkg/logger"
	"tripweave/pkg/metrics"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(cache services.ItineraryCache, log logger.Logger, m *metrics.Metrics) services.ItineraryServiceInterface {
	return services.NewItineraryService(cache, log, m)
}
