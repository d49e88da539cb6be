package services

import (
	"math"

	"luxing/internal/models/response_models"
)

// SummarizeCosts totals the per-day costs and lists the distinct cities the
// plan visits, in first-appearance order. Totals are recomputed from the day
// entries so they always agree with what the client renders.
func SummarizeCosts(days []response_models.DayPlan) (totalRMB, totalUSD float64, cities []string) {
	seen := make(map[string]bool)
	for _, d := range days {
		totalRMB += d.Cost.RMB
		totalUSD += d.Cost.USD
		if !seen[d.CityID] {
			seen[d.CityID] = true
			cities = append(cities, d.CityID)
		}
	}
	totalRMB = math.Round(totalRMB)
	totalUSD = math.Round(totalUSD*100) / 100
	return totalRMB, totalUSD, cities
}
