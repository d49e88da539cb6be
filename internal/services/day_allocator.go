package services

// AllocateCityDays splits a trip's duration across the selected cities.
//
// Each city receives floor(duration/numCities) days and the remainder goes to
// the first cities in input order, one extra day each — reordering the city
// list changes which cities get the bonus day. When the caller supplied
// explicit per-city counts those are returned verbatim: no validation against
// durationDays happens here, the builder's global day counter enforces the
// ceiling instead.
func AllocateCityDays(durationDays int, cities []string, explicit map[string]int) map[string]int {
	if len(explicit) > 0 {
		out := make(map[string]int, len(explicit))
		for id, days := range explicit {
			out[id] = days
		}
		return out
	}

	out := make(map[string]int, len(cities))
	if len(cities) == 0 || durationDays <= 0 {
		return out
	}

	base := durationDays / len(cities)
	remainder := durationDays % len(cities)

	for i, id := range cities {
		days := base
		if i < remainder {
			days++
		}
		out[id] = days
	}
	return out
}
