package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"luxing/cmd/fx/account_fx"
	"luxing/cmd/fx/catalog_fx"
	"luxing/cmd/fx/db_fx"
	"luxing/cmd/fx/generative_fx"
	"luxing/cmd/fx/itinerary_fx"
	"luxing/cmd/fx/trip_fx"
	"luxing/internal/api/controllers"
	"luxing/internal/infra"
	"luxing/pkg/middleware"
	"luxing/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	infra.LoadConfig()
	utils.SetJWTSecret(infra.AppConfig.JWTSecret)
	utils.InitializeLogger()
	if infra.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app := fx.New(
		db_fx.Module,
		catalog_fx.Module,
		generative_fx.Module,
		itinerary_fx.Module,
		trip_fx.Module,
		account_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", infra.AppConfig.AppPort)
				if err := engine.Run(":" + infra.AppConfig.AppPort); err != nil {
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
	catalogController *controllers.CatalogController,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, catalogController, itineraryController, tripController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	catalogController *controllers.CatalogController,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) {

	citiesGroup := r.Group("/cities")
	citiesGroup.GET("", catalogController.ListCities)
	citiesGroup.GET("/:cityId", catalogController.GetCity)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("/build", itineraryController.BuildItinerary)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripController.SaveTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:tripId", tripController.GetTrip)
	tripsGroup.DELETE("/:tripId", tripController.DeleteTrip)
}
