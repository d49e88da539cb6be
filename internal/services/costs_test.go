package services

import (
	"testing"

	"luxing/internal/catalog"
)

func TestEffectiveTier_Majority(t *testing.T) {
	t.Parallel()

	tiers := map[string]catalog.Tier{
		"beijing":  catalog.TierLuxury,
		"shanghai": catalog.TierLuxury,
		"xian":     catalog.TierBudget,
	}
	if got := EffectiveTier(tiers, catalog.TierComfort); got != catalog.TierLuxury {
		t.Fatalf("EffectiveTier=%s, want luxury", got)
	}
}

func TestEffectiveTier_TieBreaksToComfort(t *testing.T) {
	t.Parallel()

	tiers := map[string]catalog.Tier{
		"beijing":  catalog.TierBudget,
		"shanghai": catalog.TierLuxury,
	}
	if got := EffectiveTier(tiers, catalog.TierLuxury); got != catalog.TierComfort {
		t.Fatalf("EffectiveTier=%s, want comfort on tie", got)
	}
}

func TestEffectiveTier_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	if got := EffectiveTier(nil, catalog.TierBudget); got != catalog.TierBudget {
		t.Fatalf("EffectiveTier=%s, want budget", got)
	}
	if got := EffectiveTier(nil, ""); got != catalog.TierComfort {
		t.Fatalf("EffectiveTier=%s, want comfort default", got)
	}
}

func TestNewDayCost_RoundsOnceAtDayLevel(t *testing.T) {
	t.Parallel()

	cost := newDayCost(899.6)
	if cost.RMB != 900 {
		t.Fatalf("RMB=%v, want 900", cost.RMB)
	}
	if cost.USD != 125 {
		t.Fatalf("USD=%v, want 125", cost.USD)
	}
}

func TestQualityBandFor_UnknownTierUsesComfort(t *testing.T) {
	t.Parallel()

	band := qualityBandFor(catalog.Tier("weird"))
	if band.Label != "moderate" {
		t.Fatalf("band=%+v, want the moderate band", band)
	}
}
