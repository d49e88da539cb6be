package services

import (
	"math"

	"luxing/internal/catalog"
	"luxing/internal/models/response_models"
)

// Fixed exchange rate for display purposes only; real pricing integration is
// out of scope.
const rmbPerUSD = 7.2

const (
	defaultTicketRMB     = 50
	fallbackTransportRMB = 80
)

// Daily cost-of-travel baselines by accommodation tier, perturbed per day by
// the seeded multiplier in the deterministic builder.
var tierDailyBaselineRMB = map[catalog.Tier]float64{
	catalog.TierBudget:  500,
	catalog.TierComfort: 900,
	catalog.TierLuxury:  1800,
}

// qualityBand is the lodging quality vocabulary used on the generative path:
// budget/comfort/luxury map to cheap/moderate/expensive price bands.
type qualityBand struct {
	Label      string
	PriceBand  string
	HotelClass string
	HotelRMB   float64
	MealsRMB   float64
}

var tierQualityBands = map[catalog.Tier]qualityBand{
	catalog.TierBudget: {
		Label:      "cheap",
		PriceBand:  "150-300 RMB per night",
		HotelClass: "guesthouse or budget chain hotel",
		HotelRMB:   200,
		MealsRMB:   100,
	},
	catalog.TierComfort: {
		Label:      "moderate",
		PriceBand:  "300-800 RMB per night",
		HotelClass: "three to four star hotel",
		HotelRMB:   500,
		MealsRMB:   200,
	},
	catalog.TierLuxury: {
		Label:      "expensive",
		PriceBand:  "800+ RMB per night",
		HotelClass: "five star or boutique luxury hotel",
		HotelRMB:   1200,
		MealsRMB:   400,
	},
}

func qualityBandFor(tier catalog.Tier) qualityBand {
	if b, ok := tierQualityBands[tier]; ok {
		return b
	}
	return tierQualityBands[catalog.TierComfort]
}

// EffectiveTier resolves the trip-level tier used for cost baselines: the
// majority among per-city selections, ties broken toward comfort. Each day's
// own hotel lookup still uses that city's chosen tier.
func EffectiveTier(cityTiers map[string]catalog.Tier, globalTier catalog.Tier) catalog.Tier {
	if len(cityTiers) == 0 {
		if globalTier == "" {
			return catalog.TierComfort
		}
		return globalTier
	}

	counts := map[catalog.Tier]int{}
	for _, t := range cityTiers {
		counts[t]++
	}

	best := catalog.TierComfort
	bestCount := -1
	tied := false
	for _, t := range []catalog.Tier{catalog.TierBudget, catalog.TierComfort, catalog.TierLuxury} {
		switch {
		case counts[t] > bestCount:
			best, bestCount, tied = t, counts[t], false
		case counts[t] == bestCount:
			tied = true
		}
	}
	if tied {
		return catalog.TierComfort
	}
	return best
}

// newDayCost rounds RMB to whole yuan and converts at the fixed rate. Rounding
// happens once here, at the day level, so trip totals stay an exact sum of the
// per-day fields.
func newDayCost(rmb float64) response_models.DayCost {
	rounded := math.Round(rmb)
	return response_models.DayCost{
		RMB: rounded,
		USD: math.Round(rounded/rmbPerUSD*100) / 100,
	}
}
