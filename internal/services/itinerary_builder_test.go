package services

import (
	"testing"

	"luxing/internal/catalog"
	"luxing/internal/models/request_models"
)

func TestBuildDeterministicItinerary_TwoCitySplit(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	req := request_models.TripRequest{
		DurationDays: 6,
		Cities:       []string{"beijing", "shanghai"},
	}

	result := BuildDeterministicItinerary(cat, req)
	if len(result.Days) != 6 {
		t.Fatalf("got %d days, want 6", len(result.Days))
	}
	if len(result.SkippedCities) != 0 {
		t.Fatalf("skipped=%v, want none", result.SkippedCities)
	}

	for i, d := range result.Days {
		if d.Day != i+1 {
			t.Fatalf("day %d numbered %d, want contiguous numbering", i, d.Day)
		}
	}
	for _, d := range result.Days[:3] {
		if d.CityID != "beijing" {
			t.Fatalf("day %d in %s, want beijing", d.Day, d.CityID)
		}
	}
	for _, d := range result.Days[3:] {
		if d.CityID != "shanghai" {
			t.Fatalf("day %d in %s, want shanghai", d.Day, d.CityID)
		}
	}

	if result.Days[0].Title != "Arrive in Beijing" {
		t.Fatalf("day 1 title=%q", result.Days[0].Title)
	}
	if result.Days[3].Title != "Travel to Shanghai" {
		t.Fatalf("day 4 title=%q", result.Days[3].Title)
	}
	if result.Days[3].Transport == nil || result.Days[3].Transport.From != "beijing" {
		t.Fatalf("day 4 transport=%+v, want a leg from beijing", result.Days[3].Transport)
	}
	// Transport appears only on city-entry days.
	if result.Days[0].Transport != nil || result.Days[4].Transport != nil {
		t.Fatal("transport present on a non-entry day")
	}
}

func TestBuildDeterministicItinerary_PaceControlsActivityCount(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	for pace, want := range map[catalog.Pace]int{
		catalog.PaceRelaxed: 1,
		catalog.PaceIntense: 3,
	} {
		req := request_models.TripRequest{
			DurationDays: 2,
			Cities:       []string{"beijing"},
			Pace:         pace,
		}
		result := BuildDeterministicItinerary(cat, req)
		for _, d := range result.Days {
			if len(d.Activities) != want {
				t.Fatalf("pace %s: day %d has %d activities, want %d", pace, d.Day, len(d.Activities), want)
			}
		}
	}
}

func TestBuildDeterministicItinerary_TruncatesOverCommittedAllocation(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	req := request_models.TripRequest{
		DurationDays: 4,
		Cities:       []string{"beijing", "shanghai"},
		CityDays:     map[string]int{"beijing": 5, "shanghai": 5},
	}

	result := BuildDeterministicItinerary(cat, req)
	if len(result.Days) != 4 {
		t.Fatalf("got %d days, want truncation at 4", len(result.Days))
	}
	for _, d := range result.Days {
		if d.CityID != "beijing" {
			t.Fatalf("day %d in %s, want the over-committed first city only", d.Day, d.CityID)
		}
	}
}

func TestBuildDeterministicItinerary_SkipsUnknownCity(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	req := request_models.TripRequest{
		DurationDays: 4,
		Cities:       []string{"beijing", "atlantis"},
	}

	result := BuildDeterministicItinerary(cat, req)
	if len(result.SkippedCities) != 1 || result.SkippedCities[0] != "atlantis" {
		t.Fatalf("skipped=%v, want [atlantis]", result.SkippedCities)
	}
	// The unknown city's share is not redistributed: the plan runs short.
	if len(result.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(result.Days))
	}
}

func TestBuildDeterministicItinerary_CostsReproducible(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	req := request_models.TripRequest{
		DurationDays:      5,
		Cities:            []string{"xian", "chengdu"},
		Pace:              catalog.PaceIntense,
		AccommodationTier: catalog.TierLuxury,
	}

	first := BuildDeterministicItinerary(cat, req)
	second := BuildDeterministicItinerary(cat, req)
	if len(first.Days) != len(second.Days) {
		t.Fatalf("day counts differ: %d vs %d", len(first.Days), len(second.Days))
	}
	for i := range first.Days {
		if first.Days[i].Cost != second.Days[i].Cost {
			t.Fatalf("day %d cost differs across rebuilds: %+v vs %+v", i+1, first.Days[i].Cost, second.Days[i].Cost)
		}
	}

	// Costs stay within the tier's perturbation band.
	for _, d := range first.Days {
		if d.Cost.RMB < 1800*0.9 || d.Cost.RMB > 1800*1.1 {
			t.Fatalf("day %d RMB=%v outside the luxury band", d.Day, d.Cost.RMB)
		}
	}
}

func TestBuildDeterministicItinerary_HotelAndFoodFollowPreferences(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	req := request_models.TripRequest{
		DurationDays:      2,
		Cities:            []string{"beijing"},
		DietaryPreference: catalog.DietHalal,
		AccommodationTier: catalog.TierBudget,
	}

	result := BuildDeterministicItinerary(cat, req)
	for _, d := range result.Days {
		if d.Hotel == nil || d.Hotel.Tier != catalog.TierBudget {
			t.Fatalf("day %d hotel=%+v, want a budget hotel", d.Day, d.Hotel)
		}
		if d.Food == nil {
			t.Fatalf("day %d has no food pick", d.Day)
		}
	}
	// Consecutive days cycle through the preference list.
	if result.Days[0].Food.Name == result.Days[1].Food.Name {
		t.Fatalf("days 1 and 2 repeat %q despite a longer halal list", result.Days[0].Food.Name)
	}
}
