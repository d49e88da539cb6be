package services

import (
	"errors"
	"testing"

	"luxing/internal/catalog"
	"luxing/internal/models/request_models"
	"luxing/pkg/utils"
)

func selectedForTest(cat *catalog.Catalog) map[string][]catalog.Attraction {
	return ResolveSelectedPlaces(cat, map[string][]int{"beijing": {0, 2}})
}

func generatedWith(items ...GeneratedScheduleItem) *GeneratedItinerary {
	return &GeneratedItinerary{Days: []GeneratedDay{{Day: 1, City: "Beijing", Schedule: items}}}
}

func TestValidateGeneratedSchedule_AcceptsCompleteCoverage(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	gen := generatedWith(
		GeneratedScheduleItem{Activity: "  forbidden city ", Type: "attraction"},
		GeneratedScheduleItem{Activity: "Temple of Heaven", Type: "attraction"},
		GeneratedScheduleItem{Activity: "Lunch break", Type: "meal"},
	)

	if err := ValidateGeneratedSchedule(gen, selectedForTest(cat)); err != nil {
		t.Fatalf("ValidateGeneratedSchedule: %v", err)
	}
}

func TestValidateGeneratedSchedule_RejectsMissingPlace(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	gen := generatedWith(
		GeneratedScheduleItem{Activity: "Forbidden City", Type: "attraction"},
	)

	err := ValidateGeneratedSchedule(gen, selectedForTest(cat))
	if !errors.Is(err, utils.ErrScheduleIncomplete) {
		t.Fatalf("err=%v, want ErrScheduleIncomplete", err)
	}
}

func TestValidateGeneratedSchedule_RejectsRenamedPlace(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	gen := generatedWith(
		GeneratedScheduleItem{Activity: "The Forbidden City Palace Museum", Type: "attraction"},
		GeneratedScheduleItem{Activity: "Temple of Heaven", Type: "attraction"},
	)

	err := ValidateGeneratedSchedule(gen, selectedForTest(cat))
	if !errors.Is(err, utils.ErrScheduleIncomplete) {
		t.Fatalf("err=%v, want rename treated as missing", err)
	}
}

func TestValidateGeneratedSchedule_IgnoresNonAttractionItems(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	// The name appears only inside a meal block, which does not count.
	gen := generatedWith(
		GeneratedScheduleItem{Activity: "Forbidden City", Type: "meal"},
		GeneratedScheduleItem{Activity: "Temple of Heaven", Type: "attraction"},
	)

	err := ValidateGeneratedSchedule(gen, selectedForTest(cat))
	if !errors.Is(err, utils.ErrScheduleIncomplete) {
		t.Fatalf("err=%v, want ErrScheduleIncomplete", err)
	}
}

func TestReconcileGeneratedItinerary_RenumbersAndMapsToCatalog(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	req := request_models.TripRequest{
		DurationDays:   2,
		Cities:         []string{"beijing"},
		SelectedPlaces: map[string][]int{"beijing": {0, 2}},
	}
	selected := ResolveSelectedPlaces(cat, req.SelectedPlaces)
	alloc := AllocateCityDays(req.DurationDays, req.Cities, req.CityDays)

	gen := &GeneratedItinerary{Days: []GeneratedDay{
		{
			Day:  7, // model numbering is ignored
			City: "Beijing",
			Schedule: []GeneratedScheduleItem{
				{Time: "09:00", Activity: "Forbidden City", Type: "attraction"},
				{Time: "12:30", Activity: "Peking duck lunch", Type: "meal"},
			},
		},
		{
			Day:  9,
			City: "Beijing",
			Schedule: []GeneratedScheduleItem{
				{Time: "10:00", Activity: "Temple of Heaven", Type: "attraction"},
			},
		},
	}}

	days := ReconcileGeneratedItinerary(cat, req, alloc, selected, gen)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[0].Day != 1 || days[1].Day != 2 {
		t.Fatalf("day numbers %d,%d, want contiguous renumbering", days[0].Day, days[1].Day)
	}

	if len(days[0].Activities) != 1 || days[0].Activities[0].TicketRMB != 60 {
		t.Fatalf("day 1 activities=%+v, want the catalog's Forbidden City entry", days[0].Activities)
	}
	if len(days[0].Schedule) != 2 {
		t.Fatalf("day 1 schedule=%+v, want the generated items carried over", days[0].Schedule)
	}
	if days[0].Hotel == nil || days[0].Hotel.Tier != catalog.TierComfort {
		t.Fatalf("day 1 hotel=%+v, want the catalog comfort hotel", days[0].Hotel)
	}
	if days[0].Cost.RMB == 0 {
		t.Fatal("day 1 has no cost")
	}
}

func TestReconcileGeneratedItinerary_CapsAtRequestedDuration(t *testing.T) {
	t.Parallel()

	cat := catalog.Default()
	req := request_models.TripRequest{
		DurationDays:   1,
		Cities:         []string{"beijing"},
		SelectedPlaces: map[string][]int{"beijing": {0}},
	}
	selected := ResolveSelectedPlaces(cat, req.SelectedPlaces)
	alloc := AllocateCityDays(req.DurationDays, req.Cities, req.CityDays)

	gen := &GeneratedItinerary{Days: []GeneratedDay{
		{Day: 1, City: "Beijing", Schedule: []GeneratedScheduleItem{{Activity: "Forbidden City", Type: "attraction"}}},
		{Day: 2, City: "Beijing", Schedule: []GeneratedScheduleItem{{Activity: "Extra day", Type: "attraction"}}},
	}}

	days := ReconcileGeneratedItinerary(cat, req, alloc, selected, gen)
	if len(days) != 1 {
		t.Fatalf("got %d days, want the reply capped at 1", len(days))
	}
}
