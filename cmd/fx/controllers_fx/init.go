package controllers_fx

import (
	"go.uber.org/fx"

	"tripweave/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewExperiencesController))
