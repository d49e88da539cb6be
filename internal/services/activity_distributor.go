package services

import "luxing/internal/catalog"

// ActivitiesPerDay maps pace to the number of attraction slots in a day.
func ActivitiesPerDay(pace catalog.Pace) int {
	switch pace {
	case catalog.PaceIntense:
		return 3
	case catalog.PaceRelaxed:
		return 1
	default:
		return 2
	}
}

// ActivitiesForDay picks the attractions for one day within a city. For day
// index i and slot j the attraction index is (i*perDay + j) mod len — a
// round-robin that covers the whole list over enough days and repeats once it
// is exhausted. Catalog lists are short; repetition on long stays is accepted
// behavior.
func ActivitiesForDay(pace catalog.Pace, attractions []catalog.Attraction, dayIndex int) []catalog.Attraction {
	if len(attractions) == 0 || dayIndex < 0 {
		return nil
	}

	perDay := ActivitiesPerDay(pace)
	out := make([]catalog.Attraction, 0, perDay)
	for j := 0; j < perDay; j++ {
		idx := (dayIndex*perDay + j) % len(attractions)
		out = append(out, attractions[idx])
	}
	return out
}
