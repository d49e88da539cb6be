package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"luxing/internal/catalog"
	"luxing/internal/models/request_models"
	"luxing/internal/models/response_models"
)

// BuildResult carries the deterministic builder's output plus the cities it
// had to skip because the catalog has no entry for them. A skipped city means
// the itinerary runs shorter than requested; callers can tell that apart from
// an intentionally short plan.
type BuildResult struct {
	Days          []response_models.DayPlan
	SkippedCities []string
}

// BuildDeterministicItinerary composes the full day-by-day plan from the
// catalog alone. Day numbers are contiguous 1..N across city boundaries and
// the global counter stops once DurationDays is reached, which silently
// truncates the tail when explicit city allocations over-commit.
func BuildDeterministicItinerary(cat *catalog.Catalog, req request_models.TripRequest) BuildResult {
	req = req.Normalized()

	alloc := AllocateCityDays(req.DurationDays, req.Cities, req.CityDays)
	effectiveTier := EffectiveTier(req.CityTiers, req.AccommodationTier)
	baseline := tierDailyBaselineRMB[effectiveTier]
	rng := rand.New(rand.NewSource(costSeed(req, effectiveTier)))

	var result BuildResult
	dayNumber := 0
	prevCityID := ""

	for cityIdx, cityID := range req.Cities {
		if dayNumber >= req.DurationDays {
			break
		}

		entry, ok := cat.City(cityID)
		if !ok {
			result.SkippedCities = append(result.SkippedCities, cityID)
			continue
		}

		cityTier := req.TierFor(cityID)
		for local := 0; local < alloc[cityID] && dayNumber < req.DurationDays; local++ {
			dayNumber++

			plan := response_models.DayPlan{
				Day:       dayNumber,
				CityID:    entry.ID,
				CityName:  entry.Name,
				Emergency: entry.Emergency,
			}

			plan.Activities = ActivitiesForDay(req.Pace, entry.Attractions, local)

			if foods := entry.FoodFor(req.DietaryPreference); len(foods) > 0 {
				food := foods[local%len(foods)]
				plan.Food = &food
			}

			if hotel, ok := entry.Hotels[cityTier]; ok {
				plan.Hotel = &hotel
			}

			entryDay := local == 0
			if entryDay && prevCityID != "" {
				if leg, ok := entry.RouteFrom(prevCityID); ok {
					plan.Transport = &leg
				}
			}

			plan.Title = dayTitle(entry, plan.Activities, entryDay, cityIdx == 0)
			plan.Tips = collectTips(plan.Activities)

			// Bounded perturbation around the tier baseline; the seeded
			// source makes identical requests price identically.
			multiplier := 0.9 + rng.Float64()*0.2
			plan.Cost = newDayCost(baseline * multiplier)

			result.Days = append(result.Days, plan)
		}
		prevCityID = entry.ID
	}

	return result
}

func dayTitle(entry catalog.CityEntry, activities []catalog.Attraction, entryDay, firstCity bool) string {
	if entryDay && !firstCity {
		return fmt.Sprintf("Travel to %s", entry.Name)
	}
	if entryDay && firstCity {
		return fmt.Sprintf("Arrive in %s", entry.Name)
	}
	if len(activities) > 0 {
		return activities[0].Name
	}
	return fmt.Sprintf("Explore %s", entry.Name)
}

func collectTips(activities []catalog.Attraction) []string {
	var tips []string
	for _, a := range activities {
		if a.Tips != "" {
			tips = append(tips, a.Tips)
		}
	}
	return tips
}

// costSeed derives a stable seed from the parameters that shape the plan, so
// rebuilds of the same request reproduce the same per-day costs.
func costSeed(req request_models.TripRequest, tier catalog.Tier) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%s|%s|%s", req.DurationDays, req.Pace, req.DietaryPreference, tier)
	for _, c := range req.Cities {
		fmt.Fprintf(h, "|%s", c)
	}
	if len(req.CityDays) > 0 {
		ids := make([]string, 0, len(req.CityDays))
		for id := range req.CityDays {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(h, "|%s=%d", id, req.CityDays[id])
		}
	}
	return int64(h.Sum64())
}
