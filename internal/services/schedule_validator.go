package services

import (
	"fmt"
	"strings"

	"luxing/internal/catalog"
	"luxing/internal/models/request_models"
	"luxing/internal/models/response_models"
	"luxing/pkg/utils"
)

// ValidateGeneratedSchedule enforces the all-or-nothing acceptance policy:
// every user-selected attraction name must appear among the attraction-type
// schedule items somewhere in the generated itinerary. One missing name
// rejects the whole result — partial credit is never given. Matching is exact
// after case-folding and trimming; a renamed attraction counts as invented.
func ValidateGeneratedSchedule(gen *GeneratedItinerary, selected map[string][]catalog.Attraction) error {
	present := make(map[string]bool)
	for _, day := range gen.Days {
		for _, item := range day.Schedule {
			if item.Type == "attraction" {
				present[normalizeName(item.Activity)] = true
			}
		}
	}

	for _, places := range selected {
		for _, a := range places {
			if !present[normalizeName(a.Name)] {
				return fmt.Errorf("%w: %q", utils.ErrScheduleIncomplete, a.Name)
			}
		}
	}
	return nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ReconcileGeneratedItinerary converts an accepted generative result into
// DayPlans. Day numbers are recomputed 1..N regardless of what the model
// claimed; the city of each day follows the request's city order and
// allocation, not the model's labels. Attraction blocks are mapped back onto
// catalog entries through the selected set so payload fields (tickets,
// addresses, tips) come from the catalog, not the model.
func ReconcileGeneratedItinerary(cat *catalog.Catalog, req request_models.TripRequest, alloc map[string]int, selected map[string][]catalog.Attraction, gen *GeneratedItinerary) []response_models.DayPlan {
	req = req.Normalized()

	byName := make(map[string]catalog.Attraction)
	for _, places := range selected {
		for _, a := range places {
			byName[normalizeName(a.Name)] = a
		}
	}

	cityAt, localAt := dayCityIndex(cat, req, alloc)

	var days []response_models.DayPlan
	for i, genDay := range gen.Days {
		if len(days) >= req.DurationDays || i >= len(cityAt) {
			break
		}
		entry, ok := cat.City(cityAt[i])
		if !ok {
			continue
		}
		local := localAt[i]
		band := qualityBandFor(req.TierFor(entry.ID))

		plan := response_models.DayPlan{
			Day:       len(days) + 1,
			CityID:    entry.ID,
			CityName:  entry.Name,
			Emergency: entry.Emergency,
		}

		for _, item := range genDay.Schedule {
			plan.Schedule = append(plan.Schedule, response_models.ScheduleItem{
				Time:         item.Time,
				Activity:     item.Activity,
				LocalName:    item.ActivityLocal,
				Duration:     item.Duration,
				Type:         item.Type,
				Notes:        item.Notes,
				TravelToNext: item.TravelToNext,
			})
			if item.Type == "attraction" {
				if a, ok := byName[normalizeName(item.Activity)]; ok {
					plan.Activities = append(plan.Activities, a)
				}
			}
		}

		if hotel, ok := entry.Hotels[req.TierFor(entry.ID)]; ok {
			plan.Hotel = &hotel
		} else if genDay.Hotel.Name != "" {
			plan.Hotel = &catalog.HotelOption{
				Name:          genDay.Hotel.Name,
				LocalName:     genDay.Hotel.LocalName,
				Tier:          req.TierFor(entry.ID),
				PricePerNight: band.HotelRMB,
				Address:       genDay.Hotel.Location,
			}
		}

		if foods := entry.FoodFor(req.DietaryPreference); len(foods) > 0 {
			food := foods[local%len(foods)]
			plan.Food = &food
		}

		plan.Title = dayTitle(entry, plan.Activities, local == 0, entry.ID == firstKnownCity(cat, req.Cities))
		plan.Tips = collectTips(plan.Activities)
		plan.Cost = newDayCost(synthDayCostRMB(plan.Activities, band))

		days = append(days, plan)
	}
	return days
}

// dayCityIndex flattens (city order × allocation) into per-global-day city and
// local-day-index lookups, skipping cities missing from the catalog.
func dayCityIndex(cat *catalog.Catalog, req request_models.TripRequest, alloc map[string]int) (cityAt []string, localAt []int) {
	for _, cityID := range req.Cities {
		if _, ok := cat.City(cityID); !ok {
			continue
		}
		for local := 0; local < alloc[cityID] && len(cityAt) < req.DurationDays; local++ {
			cityAt = append(cityAt, cityID)
			localAt = append(localAt, local)
		}
	}
	return cityAt, localAt
}

func firstKnownCity(cat *catalog.Catalog, cities []string) string {
	for _, id := range cities {
		if _, ok := cat.City(id); ok {
			return id
		}
	}
	return ""
}

// synthDayCostRMB prices a synthesized day: per-attraction tickets, a
// quality-dependent meals budget, a flat local-transport budget, and the
// tier-band hotel price.
func synthDayCostRMB(activities []catalog.Attraction, band qualityBand) float64 {
	total := band.MealsRMB + fallbackTransportRMB + band.HotelRMB
	for _, a := range activities {
		total += ticketOrDefault(a)
	}
	return total
}

// ticketOrDefault treats a zero ticket as unpriced dataset content rather than
// free entry.
func ticketOrDefault(a catalog.Attraction) float64 {
	if a.TicketRMB <= 0 {
		return defaultTicketRMB
	}
	return a.TicketRMB
}
