package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweave/internal/repositories"
	"tripweave/internal/services"
	"tripweave/pkg/logger"
)

var Module = fx.Provide(provideTripRepo, provideTripService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, itineraries services.ItineraryServiceInterface, log logger.Logger) services.TripServiceInterface {
	return services.NewTripService(tripRepo, itineraries, log)
}
