package generative_fx

import (
	"log"

	"go.uber.org/fx"

	"luxing/internal/infra"
	"luxing/pkg/utils"
)

var Module = fx.Provide(
	provideScheduleClient)

// provideScheduleClient builds the configured generative client. A nil client
// is a valid result: it means no provider is configured and the itinerary
// service keeps to the deterministic paths.
func provideScheduleClient() utils.ScheduleClientInterface {
	client, err := utils.NewScheduleClient(infra.AppConfig.AIProvider, infra.AppConfig.AIAPIKey, infra.AppConfig.AIModel)
	if err != nil {
		log.Printf("Generative provider unavailable, continuing without it: %v", err)
		return nil
	}
	return client
}
