package response_models

import "luxing/internal/catalog"

// Generator provenance values for ItineraryResponse.Generator.
const (
	GeneratorDeterministic = "deterministic"
	GeneratorAI            = "ai"
	GeneratorFallback      = "fallback"
)

type DayCost struct {
	RMB float64 `json:"rmb"`
	USD float64 `json:"usd"`
}

// ScheduleItem is one timed block inside a day. Type is one of "attraction",
// "meal", "hotel_checkout", "hotel_checkin", or "transport" on synthesized
// travel days.
type ScheduleItem struct {
	Time         string `json:"time"`
	Activity     string `json:"activity"`
	LocalName    string `json:"local_name,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Type         string `json:"type"`
	Notes        string `json:"notes,omitempty"`
	TravelToNext string `json:"travel_to_next,omitempty"`
}

// DayPlan is the engine's per-day output. Created once per build; day numbers
// are recomputed from scratch on every rebuild. Transport is present only on
// the first day the trip enters a new city with a registered route from the
// previous city.
type DayPlan struct {
	Day        int                   `json:"day"`
	CityID     string                `json:"city_id"`
	CityName   string                `json:"city_name"`
	Title      string                `json:"title"`
	Activities []catalog.Attraction  `json:"activities"`
	Food       *catalog.FoodOption   `json:"food,omitempty"`
	Hotel      *catalog.HotelOption  `json:"hotel,omitempty"`
	Transport  *catalog.TransportLeg `json:"transport,omitempty"`
	Schedule   []ScheduleItem        `json:"schedule,omitempty"`
	Tips       []string              `json:"tips,omitempty"`
	Emergency  catalog.EmergencyInfo `json:"emergency"`
	Cost       DayCost               `json:"cost"`
}

type ItineraryResponse struct {
	Days []DayPlan `json:"days"`

	TotalRMB float64  `json:"total_rmb"`
	TotalUSD float64  `json:"total_usd"`
	Cities   []string `json:"cities"`

	// Generator records which path produced the plan; Advisory carries the
	// non-fatal reason when the generative path was abandoned.
	Generator string `json:"generator"`
	Advisory  string `json:"advisory,omitempty"`

	// SkippedCities lists requested cities absent from the catalog. The plan
	// is intentionally shorter when this is non-empty.
	SkippedCities []string `json:"skipped_cities,omitempty"`
}

type CitySummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	LocalName       string `json:"local_name"`
	Image           string `json:"image"`
	RecommendedDays int    `json:"recommended_days"`
	AttractionCount int    `json:"attraction_count"`
}

type CityDetail struct {
	CitySummary
	Attractions []catalog.Attraction  `json:"attractions"`
	Emergency   catalog.EmergencyInfo `json:"emergency"`
}

type SavedTripResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	DurationDays int      `json:"duration_days"`
	Cities       []string `json:"cities"`
	Pace         string   `json:"pace"`
	Generator    string   `json:"generator"`
	TotalRMB     float64  `json:"total_rmb"`
	TotalUSD     float64  `json:"total_usd"`
	CreatedAt    string   `json:"created_at"`
}

type SavedTripDetailResponse struct {
	SavedTripResponse
	Itinerary ItineraryResponse `json:"itinerary"`
}
