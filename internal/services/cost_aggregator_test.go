package services

import (
	"testing"

	"luxing/internal/models/response_models"
)

func TestSummarizeCosts_TotalsAndCityOrder(t *testing.T) {
	t.Parallel()

	days := []response_models.DayPlan{
		{Day: 1, CityID: "beijing", Cost: response_models.DayCost{RMB: 900, USD: 125}},
		{Day: 2, CityID: "beijing", Cost: response_models.DayCost{RMB: 850, USD: 118.06}},
		{Day: 3, CityID: "shanghai", Cost: response_models.DayCost{RMB: 910, USD: 126.39}},
	}

	rmb, usd, cities := SummarizeCosts(days)
	if rmb != 2660 {
		t.Fatalf("total RMB=%v, want 2660", rmb)
	}
	if usd != 369.45 {
		t.Fatalf("total USD=%v, want 369.45", usd)
	}
	if len(cities) != 2 || cities[0] != "beijing" || cities[1] != "shanghai" {
		t.Fatalf("cities=%v, want first-appearance order", cities)
	}
}

func TestSummarizeCosts_Empty(t *testing.T) {
	t.Parallel()

	rmb, usd, cities := SummarizeCosts(nil)
	if rmb != 0 || usd != 0 || len(cities) != 0 {
		t.Fatalf("got %v/%v/%v, want zeros", rmb, usd, cities)
	}
}
