package services

import (
	"fmt"
	"testing"

	"luxing/internal/catalog"
)

func numberedAttractions(n int) []catalog.Attraction {
	out := make([]catalog.Attraction, n)
	for i := range out {
		out[i] = catalog.Attraction{Name: fmt.Sprintf("a%d", i)}
	}
	return out
}

func TestActivitiesPerDay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pace catalog.Pace
		want int
	}{
		{catalog.PaceRelaxed, 1},
		{catalog.PaceModerate, 2},
		{catalog.PaceIntense, 3},
		{catalog.Pace("unknown"), 2},
	}
	for _, tc := range cases {
		if got := ActivitiesPerDay(tc.pace); got != tc.want {
			t.Errorf("ActivitiesPerDay(%q)=%d, want %d", tc.pace, got, tc.want)
		}
	}
}

func TestActivitiesForDay_ModerateSecondDay(t *testing.T) {
	t.Parallel()

	attractions := numberedAttractions(8)

	got := ActivitiesForDay(catalog.PaceModerate, attractions, 1)
	if len(got) != 2 || got[0].Name != "a2" || got[1].Name != "a3" {
		t.Fatalf("day 1 activities=%v, want [a2 a3]", got)
	}
}

func TestActivitiesForDay_WrapsAroundShortList(t *testing.T) {
	t.Parallel()

	attractions := numberedAttractions(3)

	// Intense pace, day index 1: indices 3,4,5 mod 3 -> 0,1,2.
	got := ActivitiesForDay(catalog.PaceIntense, attractions, 1)
	if len(got) != 3 || got[0].Name != "a0" || got[1].Name != "a1" || got[2].Name != "a2" {
		t.Fatalf("wrapped activities=%v", got)
	}
}

func TestActivitiesForDay_CoversListOverConsecutiveDays(t *testing.T) {
	t.Parallel()

	attractions := numberedAttractions(6)
	seen := map[string]bool{}
	for day := 0; day < 3; day++ {
		for _, a := range ActivitiesForDay(catalog.PaceModerate, attractions, day) {
			seen[a.Name] = true
		}
	}
	if len(seen) != 6 {
		t.Fatalf("covered %d of 6 attractions over 3 moderate days", len(seen))
	}
}

func TestActivitiesForDay_EmptyAndNegative(t *testing.T) {
	t.Parallel()

	if got := ActivitiesForDay(catalog.PaceModerate, nil, 0); got != nil {
		t.Fatalf("empty list activities=%v, want nil", got)
	}
	if got := ActivitiesForDay(catalog.PaceModerate, numberedAttractions(2), -1); got != nil {
		t.Fatalf("negative day activities=%v, want nil", got)
	}
}
