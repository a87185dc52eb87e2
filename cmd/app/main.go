package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"tripweave/cmd/fx/cache_fx"
	"tripweave/cmd/fx/controllers_fx"
	"tripweave/cmd/fx/db_fx"
	"tripweave/cmd/fx/experiences_fx"
	"tripweave/cmd/fx/itinerary_fx"
	"tripweave/cmd/fx/trips_fx"
	"tripweave/internal/api/controllers"
	"tripweave/pkg/logger"
	"tripweave/pkg/metrics"
	"tripweave/pkg/middleware"
)

func main() {
	godotenv.Load()

	app := fx.New(
		fx.Provide(provideLogger),
		fx.Provide(provideMetrics),
		db_fx.Module,
		cache_fx.Module,
		itinerary_fx.Module,
		trips_fx.Module,
		experiences_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger() logger.Logger {
	return logger.NewLogger()
}

func provideMetrics() *metrics.Metrics {
	return metrics.NewMetrics("tripweave")
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController,
	experiencesController *controllers.ExperiencesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, tripsController, experiencesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	tripsController *controllers.TripsController,
	experiencesController *controllers.ExperiencesController) {

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("/generate", itineraryController.GenerateItinerary)
	itinerariesGroup.POST("/reorder-day", itineraryController.ReorderDayItems)
	itinerariesGroup.POST("/move-item", itineraryController.MoveItemBetweenDays)

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("", tripsController.SaveTrip)
	tripsGroup.GET("", tripsController.ListTrips)
	tripsGroup.GET("/:tripId", tripsController.GetTripById)
	tripsGroup.DELETE("/:tripId", tripsController.DeleteTrip)

	experiencesGroup := r.Group("/experiences")
	experiencesGroup.POST("", experiencesController.CreateExperience)
	experiencesGroup.GET("/search", experiencesController.SearchByName)
	experiencesGroup.GET("/by-destination/:destination", experiencesController.ListByDestination)
	experiencesGroup.GET("/:id", experiencesController.GetExperienceById)
	experiencesGroup.DELETE("/:id", experiencesController.DeleteExperience)
}
