package services

import (
	"testing"
)

func TestAllocateCityDays_EvenSplit(t *testing.T) {
	t.Parallel()

	got := AllocateCityDays(6, []string{"beijing", "shanghai"}, nil)
	if got["beijing"] != 3 || got["shanghai"] != 3 {
		t.Fatalf("alloc=%v, want 3/3", got)
	}
}

func TestAllocateCityDays_RemainderGoesToEarlierCities(t *testing.T) {
	t.Parallel()

	got := AllocateCityDays(8, []string{"beijing", "shanghai", "xian"}, nil)
	if got["beijing"] != 3 || got["shanghai"] != 3 || got["xian"] != 2 {
		t.Fatalf("alloc=%v, want 3/3/2", got)
	}

	// Reordering moves the bonus days with the order.
	got = AllocateCityDays(8, []string{"xian", "shanghai", "beijing"}, nil)
	if got["xian"] != 3 || got["shanghai"] != 3 || got["beijing"] != 2 {
		t.Fatalf("reordered alloc=%v, want 3/3/2", got)
	}
}

func TestAllocateCityDays_MoreCitiesThanDays(t *testing.T) {
	t.Parallel()

	got := AllocateCityDays(2, []string{"beijing", "shanghai", "xian"}, nil)
	if got["beijing"] != 1 || got["shanghai"] != 1 || got["xian"] != 0 {
		t.Fatalf("alloc=%v, want 1/1/0", got)
	}
}

func TestAllocateCityDays_ExplicitBypassesSplit(t *testing.T) {
	t.Parallel()

	explicit := map[string]int{"beijing": 5, "shanghai": 1}
	got := AllocateCityDays(3, []string{"beijing", "shanghai"}, explicit)
	if got["beijing"] != 5 || got["shanghai"] != 1 {
		t.Fatalf("alloc=%v, want explicit 5/1 untouched", got)
	}
}

func TestAllocateCityDays_EmptyInputs(t *testing.T) {
	t.Parallel()

	if got := AllocateCityDays(5, nil, nil); len(got) != 0 {
		t.Fatalf("alloc=%v, want empty", got)
	}
	if got := AllocateCityDays(0, []string{"beijing"}, nil); len(got) != 0 {
		t.Fatalf("alloc=%v, want empty", got)
	}
}
