package services

import (
	"fmt"
	"strconv"
	"strings"

	"luxing/internal/catalog"
	"luxing/internal/models/request_models"
	"luxing/internal/models/response_models"
)

const (
	// Per-activity slack for queues and walking between sights.
	activityBufferHours = 0.5

	morningStartHour = 9.0
	checkoutHour     = 8.0
	travelStartHour  = 14.0
)

// hoursForPace bounds how many sightseeing hours a single day absorbs.
func hoursForPace(pace catalog.Pace) float64 {
	switch pace {
	case catalog.PaceIntense:
		return 10
	case catalog.PaceRelaxed:
		return 5
	default:
		return 7
	}
}

// parseDurationHours reads free-text visit durations from the catalog.
// "Half-day" and "full-day" map to 4 and 8 hours; otherwise the leading
// number wins ("2-3 hours" reads as 2). Unparseable text costs 2 hours.
func parseDurationHours(s string) float64 {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "half-day") || strings.Contains(lower, "half day") {
		return 4
	}
	if strings.Contains(lower, "full-day") || strings.Contains(lower, "full day") {
		return 8
	}

	end := 0
	for end < len(lower) && (lower[end] >= '0' && lower[end] <= '9' || lower[end] == '.') {
		end++
	}
	if end > 0 {
		if v, err := strconv.ParseFloat(lower[:end], 64); err == nil && v > 0 {
			return v
		}
	}
	return 2
}

// BuildFallbackItinerary packs the user's selected attractions into the
// allocated day buckets when the generative path is unavailable or rejected.
// Packing is greedy and order-preserving within each city: a day closes once
// the next attraction would not fit inside the pace's hour budget. The
// allocation is a hard ceiling — attractions that do not fit by the last
// bucket overflow into it rather than stretching the trip, and buckets left
// without attractions become rest days.
func BuildFallbackItinerary(cat *catalog.Catalog, req request_models.TripRequest, selected map[string][]catalog.Attraction) BuildResult {
	req = req.Normalized()

	alloc := AllocateCityDays(req.DurationDays, req.Cities, req.CityDays)
	dayHours := hoursForPace(req.Pace)

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

		buckets := packAttractions(selected[cityID], alloc[cityID], dayHours)
		cityTier := req.TierFor(cityID)
		band := qualityBandFor(cityTier)

		for local := 0; local < len(buckets) && dayNumber < req.DurationDays; local++ {
			dayNumber++
			entryDay := local == 0

			plan := response_models.DayPlan{
				Day:        dayNumber,
				CityID:     entry.ID,
				CityName:   entry.Name,
				Activities: buckets[local],
				Emergency:  entry.Emergency,
			}

			if foods := entry.FoodFor(req.DietaryPreference); len(foods) > 0 {
				food := foods[local%len(foods)]
				plan.Food = &food
			}
			if hotel, ok := entry.Hotels[cityTier]; ok {
				plan.Hotel = &hotel
			}
			if entryDay && prevCityID != "" {
				if leg, ok := entry.RouteFrom(prevCityID); ok {
					plan.Transport = &leg
				}
			}

			plan.Schedule = synthesizeSchedule(entry, plan, local, cityIdx == 0, band)
			plan.Title = dayTitle(entry, plan.Activities, entryDay, cityIdx == 0)
			plan.Tips = collectTips(plan.Activities)
			plan.Cost = newDayCost(synthDayCostRMB(plan.Activities, band))

			result.Days = append(result.Days, plan)
		}
		prevCityID = entry.ID
	}

	return result
}

// packAttractions splits a city's attractions across dayCount buckets. The
// hour budget closes a bucket early, but the final bucket never refuses an
// attraction.
func packAttractions(attractions []catalog.Attraction, dayCount int, dayHours float64) [][]catalog.Attraction {
	if dayCount <= 0 {
		return nil
	}
	buckets := make([][]catalog.Attraction, dayCount)

	bucket := 0
	used := 0.0
	for _, a := range attractions {
		need := parseDurationHours(a.Duration) + activityBufferHours
		if len(buckets[bucket]) > 0 && used+need > dayHours && bucket < dayCount-1 {
			bucket++
			used = 0
		}
		buckets[bucket] = append(buckets[bucket], a)
		used += need
	}
	return buckets
}

// synthesizeSchedule lays the day out hour by hour. Every day except a city's
// first local day opens with checkout; travel days get the transport leg and a
// later sightseeing start; every day closes with a check-in block naming the
// tier hotel (the quality band's generic class when the catalog has none) and
// dinner at the day's food pick.
func synthesizeSchedule(entry catalog.CityEntry, plan response_models.DayPlan, local int, firstCity bool, band qualityBand) []response_models.ScheduleItem {
	var items []response_models.ScheduleItem
	clock := morningStartHour

	if local > 0 {
		items = append(items, response_models.ScheduleItem{
			Time:     formatClock(checkoutHour),
			Activity: "Hotel checkout",
			Type:     "hotel_checkout",
		})
	} else if !firstCity {
		if plan.Transport != nil {
			items = append(items, response_models.ScheduleItem{
				Time:     formatClock(checkoutHour + 1),
				Activity: fmt.Sprintf("%s to %s", plan.Transport.Mode, entry.Name),
				Duration: plan.Transport.Duration,
				Type:     "transport",
				Notes:    fmt.Sprintf("%s to %s", plan.Transport.From, plan.Transport.To),
			})
		}
		clock = travelStartHour
	}

	for _, a := range plan.Activities {
		items = append(items, response_models.ScheduleItem{
			Time:      formatClock(clock),
			Activity:  a.Name,
			LocalName: a.LocalName,
			Duration:  a.Duration,
			Type:      "attraction",
			Notes:     a.Tips,
		})
		clock += parseDurationHours(a.Duration) + activityBufferHours
	}

	hotelName := band.HotelClass
	if plan.Hotel != nil {
		hotelName = plan.Hotel.Name
	}
	items = append(items, response_models.ScheduleItem{
		Time:     formatClock(clock),
		Activity: fmt.Sprintf("Check in at %s", hotelName),
		Type:     "hotel_checkin",
	})
	clock += 0.5

	if plan.Food != nil {
		dinner := clock
		if dinner < 18 {
			dinner = 18
		}
		items = append(items, response_models.ScheduleItem{
			Time:      formatClock(dinner),
			Activity:  fmt.Sprintf("Dinner at %s", plan.Food.Name),
			LocalName: plan.Food.LocalName,
			Type:      "meal",
			Notes:     plan.Food.Venue,
		})
	}
	return items
}

func formatClock(hour float64) string {
	if hour >= 24 {
		hour = 23.5
	}
	h := int(hour)
	m := int((hour - float64(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}
