package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"luxing/internal/catalog"
	"luxing/internal/models/request_models"
	"luxing/internal/models/response_models"
	"luxing/pkg/utils"
)

type ItineraryServiceInterface interface {
	BuildItinerary(ctx context.Context, req request_models.TripRequest) (response_models.ItineraryResponse, error)
}

func NewItineraryService(cat *catalog.Catalog, client utils.ScheduleClientInterface) ItineraryServiceInterface {
	return &ItineraryService{
		catalog: cat,
		client:  client,
	}
}

type ItineraryService struct {
	catalog *catalog.Catalog
	// client is nil when no generative provider is configured; the service
	// then always takes the deterministic path.
	client utils.ScheduleClientInterface
}

// BuildItinerary routes a trip request through one of three generators.
// Selected places plus a configured provider take the generative path; a
// generative failure of any kind degrades to the bin-packing fallback rather
// than surfacing an error. Requests without selected places always build
// deterministically. The response's Generator field records which path won.
func (s *ItineraryService) BuildItinerary(ctx context.Context, req request_models.TripRequest) (response_models.ItineraryResponse, error) {
	if req.DurationDays <= 0 || len(req.Cities) == 0 {
		return response_models.ItineraryResponse{}, utils.ErrInvalidInput
	}
	req = req.Normalized()

	selected := ResolveSelectedPlaces(s.catalog, req.SelectedPlaces)

	if len(selected) > 0 && s.client != nil {
		resp, err := s.buildGenerative(ctx, req, selected)
		if err == nil {
			return resp, nil
		}
		utils.GetLogger().Warn("generative itinerary rejected, using fallback",
			zap.Error(err),
			zap.Int("duration_days", req.DurationDays),
			zap.Strings("cities", req.Cities))
		return s.buildFallback(req, selected, err.Error()), nil
	}

	if len(selected) > 0 {
		return s.buildFallback(req, selected, utils.ErrGenerativeDisabled.Error()), nil
	}

	build := BuildDeterministicItinerary(s.catalog, req)
	return s.finish(build, response_models.GeneratorDeterministic, ""), nil
}

func (s *ItineraryService) buildGenerative(ctx context.Context, req request_models.TripRequest, selected map[string][]catalog.Attraction) (response_models.ItineraryResponse, error) {
	alloc := AllocateCityDays(req.DurationDays, req.Cities, req.CityDays)
	prompt := BuildSchedulePrompt(s.catalog, req, alloc, selected)

	raw, err := s.client.GenerateSchedule(ctx, scheduleSystemInstruction, prompt)
	if err != nil {
		return response_models.ItineraryResponse{}, err
	}

	gen, err := ParseGeneratedItinerary(raw)
	if err != nil {
		return response_models.ItineraryResponse{}, err
	}
	if err := ValidateGeneratedSchedule(gen, selected); err != nil {
		return response_models.ItineraryResponse{}, err
	}

	// The plan must span every allocated day; a shorter reply is rejected
	// wholesale like any other malformed result.
	cityAt, _ := dayCityIndex(s.catalog, req, alloc)
	if len(gen.Days) < len(cityAt) {
		return response_models.ItineraryResponse{}, fmt.Errorf("%w: reply covers %d of %d days", utils.ErrUnexpectedAIOutput, len(gen.Days), len(cityAt))
	}

	days := ReconcileGeneratedItinerary(s.catalog, req, alloc, selected, gen)
	build := BuildResult{Days: days, SkippedCities: missingCities(s.catalog, req.Cities)}
	return s.finish(build, response_models.GeneratorAI, ""), nil
}

func (s *ItineraryService) buildFallback(req request_models.TripRequest, selected map[string][]catalog.Attraction, advisory string) response_models.ItineraryResponse {
	build := BuildFallbackItinerary(s.catalog, req, selected)
	return s.finish(build, response_models.GeneratorFallback, advisory)
}

func (s *ItineraryService) finish(build BuildResult, generator, advisory string) response_models.ItineraryResponse {
	totalRMB, totalUSD, cities := SummarizeCosts(build.Days)
	return response_models.ItineraryResponse{
		Days:          build.Days,
		TotalRMB:      totalRMB,
		TotalUSD:      totalUSD,
		Cities:        cities,
		Generator:     generator,
		Advisory:      advisory,
		SkippedCities: build.SkippedCities,
	}
}

func missingCities(cat *catalog.Catalog, cities []string) []string {
	var missing []string
	for _, id := range cities {
		if _, ok := cat.City(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
