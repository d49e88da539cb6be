package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"luxing/internal/catalog"
	"luxing/internal/models/request_models"
	"luxing/pkg/utils"
)

// Wire contract with the text-generation service. The model is asked for a
// single JSON object in exactly this shape.
type GeneratedItinerary struct {
	Days []GeneratedDay `json:"days"`
}

type GeneratedDay struct {
	Day      int                     `json:"day"`
	City     string                  `json:"city"`
	Schedule []GeneratedScheduleItem `json:"schedule"`
	Hotel    GeneratedHotel          `json:"hotel"`
	Meals    GeneratedMeals          `json:"meals"`
}

type GeneratedScheduleItem struct {
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	ActivityLocal string `json:"activity_local,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Type          string `json:"type"`
	Notes         string `json:"notes,omitempty"`
	TravelToNext  string `json:"travel_to_next,omitempty"`
}

type GeneratedHotel struct {
	Name       string `json:"name"`
	LocalName  string `json:"local_name,omitempty"`
	PriceRange string `json:"price_range,omitempty"`
	Location   string `json:"location,omitempty"`
}

type GeneratedMeals struct {
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
}

const scheduleSystemInstruction = "You are a China travel planner. Schedule ONLY the attractions the user selected; " +
	"do not invent extra attractions. You may add neutral filler (rest, walk, cafe) only if needed to fill a day's hours. " +
	"Return a single JSON object and nothing else."

// ResolveSelectedPlaces maps the request's selected place indices onto catalog
// attractions. Unknown cities and out-of-range indices are dropped, matching
// the engine's skip-on-catalog-miss behavior.
func ResolveSelectedPlaces(cat *catalog.Catalog, selected map[string][]int) map[string][]catalog.Attraction {
	out := make(map[string][]catalog.Attraction, len(selected))
	for cityID, indices := range selected {
		for _, idx := range indices {
			if a, ok := cat.Attraction(cityID, idx); ok {
				out[cityID] = append(out[cityID], a)
			}
		}
	}
	return out
}

// BuildSchedulePrompt enumerates, per city, the day allocation and the exact
// attractions the user picked, then spells out the shape the reply must take.
func BuildSchedulePrompt(cat *catalog.Catalog, req request_models.TripRequest, alloc map[string]int, selected map[string][]catalog.Attraction) string {
	req = req.Normalized()
	band := qualityBandFor(EffectiveTier(req.CityTiers, req.AccommodationTier))

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a %d-day trip to China at a %s pace.\n\n", req.DurationDays, req.Pace)

	for _, cityID := range req.Cities {
		entry, ok := cat.City(cityID)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "City: %s (%s) — %d day(s)\n", entry.Name, entry.LocalName, alloc[cityID])
		if places := selected[cityID]; len(places) > 0 {
			b.WriteString("Selected attractions (use ONLY these):\n")
			for _, a := range places {
				fmt.Fprintf(&b, "- %s (%s) | Duration: %s | Address: %s | Hours: %s\n",
					a.Name, a.LocalName, a.Duration, a.Address, a.OpeningHours)
			}
		} else {
			b.WriteString("No specific attractions selected; keep this city's days light.\n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Lodging: recommend a %s hotel per city, %s quality, price range %s.\n",
		band.HotelClass, band.Label, band.PriceBand)
	fmt.Fprintf(&b, "Dietary preference for meal suggestions: %s.\n\n", req.DietaryPreference)

	b.WriteString("Rules:\n")
	b.WriteString("1. Every selected attraction must appear in the schedule exactly as named above.\n")
	b.WriteString("2. Insert a hotel_checkout block near the start of each day after the first in a city, and a hotel_checkin block near the end of every day.\n")
	b.WriteString("3. Times are HH:MM, realistic, non-overlapping.\n")
	b.WriteString("4. Return exactly one JSON object in this format:\n")
	b.WriteString(`{
  "days": [
    {
      "day": 1,
      "city": "city name",
      "schedule": [
        {"time": "09:00", "activity": "Attraction Name", "activity_local": "本地名", "duration": "2 hours", "type": "attraction", "notes": "...", "travel_to_next": "10 min taxi"}
      ],
      "hotel": {"name": "...", "local_name": "...", "price_range": "...", "location": "..."},
      "meals": {"breakfast": "...", "lunch": "...", "dinner": "..."}
    }
  ]
}`)
	b.WriteString("\nSchedule item type must be one of: attraction, meal, hotel_checkout, hotel_checkin.\n")

	return b.String()
}

// ParseGeneratedItinerary extracts the first balanced JSON object from the raw
// model reply and unmarshals it. Any shortfall maps to ErrUnexpectedAIOutput.
func ParseGeneratedItinerary(raw string) (*GeneratedItinerary, error) {
	object, err := utils.ExtractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedAIOutput, err)
	}

	var gen GeneratedItinerary
	if err := json.Unmarshal([]byte(object), &gen); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedAIOutput, err)
	}
	if len(gen.Days) == 0 {
		return nil, fmt.Errorf("%w: reply contains no days", utils.ErrUnexpectedAIOutput)
	}
	return &gen, nil
}
