package itinerary_fx

import (
	"go.uber.org/fx"

	"luxing/internal/api/controllers"
	"luxing/internal/catalog"
	"luxing/internal/services"
	"luxing/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryController)

func provideItineraryService(cat *catalog.Catalog, client utils.ScheduleClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(cat, client)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
