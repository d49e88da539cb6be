package request_models

import (
	"luxing/internal/catalog"
	"luxing/internal/models/response_models"
)

// TripRequest is the structured trip form the engine builds from.
//
// CityDays, when present, is used verbatim and bypasses the day allocator; the
// engine does not validate that it sums to DurationDays (the builder truncates
// once the total duration is reached). SelectedPlaces holds attraction indices
// into each city's catalog list; its presence triggers the generative path.
type TripRequest struct {
	DurationDays      int                     `json:"duration_days" binding:"required,gt=0"`
	Cities            []string                `json:"cities" binding:"required,min=1"`
	CityDays          map[string]int          `json:"city_days,omitempty"`
	Pace              catalog.Pace            `json:"pace"`
	DietaryPreference catalog.Dietary         `json:"dietary_preference"`
	AccommodationTier catalog.Tier            `json:"accommodation_tier,omitempty"`
	CityTiers         map[string]catalog.Tier `json:"city_tiers,omitempty"`
	SelectedPlaces    map[string][]int        `json:"selected_places,omitempty"`
}

// Normalized fills enum defaults so downstream code never sees empty values.
func (r TripRequest) Normalized() TripRequest {
	if r.Pace == "" {
		r.Pace = catalog.PaceModerate
	}
	if r.DietaryPreference == "" {
		r.DietaryPreference = catalog.DietAnything
	}
	if r.AccommodationTier == "" {
		r.AccommodationTier = catalog.TierComfort
	}
	return r
}

// TierFor returns the accommodation tier to use for one city: the per-city
// choice when present, otherwise the global tier.
func (r TripRequest) TierFor(cityID string) catalog.Tier {
	if t, ok := r.CityTiers[cityID]; ok && t != "" {
		return t
	}
	return r.AccommodationTier
}

// SaveTripRequest keeps a built itinerary. The document is stored whole; the
// scalar columns used by list views are lifted out of it on save.
type SaveTripRequest struct {
	Title     string                            `json:"title" binding:"required,min=1,max=120"`
	Pace      catalog.Pace                      `json:"pace,omitempty"`
	Itinerary response_models.ItineraryResponse `json:"itinerary" binding:"required"`
}
