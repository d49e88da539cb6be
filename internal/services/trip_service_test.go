package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"luxing/internal/models/db_models"
	"luxing/internal/models/request_models"
	"luxing/internal/models/response_models"
	"luxing/internal/repositories"
	"luxing/pkg/utils"
)

type fakeTripRepo struct {
	trips map[string]*db_models.SavedTrip
}

var _ repositories.TripRepository = (*fakeTripRepo)(nil)

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{trips: map[string]*db_models.SavedTrip{}}
}

func (f *fakeTripRepo) Insert(ctx context.Context, trip *db_models.SavedTrip) (uuid.UUID, error) {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = 1700000000
	}
	f.trips[trip.ID.String()] = trip
	return trip.ID, nil
}

func (f *fakeTripRepo) FindByID(ctx context.Context, id string) (*db_models.SavedTrip, error) {
	return f.trips[id], nil
}

func (f *fakeTripRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.SavedTrip, error) {
	var out []db_models.SavedTrip
	for _, t := range f.trips {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.trips, id.String())
	return nil
}

func sampleItinerary() response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		Days: []response_models.DayPlan{
			{Day: 1, CityID: "beijing", CityName: "Beijing", Cost: response_models.DayCost{RMB: 900, USD: 125}},
			{Day: 2, CityID: "shanghai", CityName: "Shanghai", Cost: response_models.DayCost{RMB: 850, USD: 118.06}},
		},
		TotalRMB:  1750,
		TotalUSD:  243.06,
		Cities:    []string{"beijing", "shanghai"},
		Generator: response_models.GeneratorDeterministic,
	}
}

func TestTripService_SaveAndGetRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTripService(newFakeTripRepo())
	userID := uuid.New()

	id, err := svc.SaveTrip(context.Background(), userID, request_models.SaveTripRequest{
		Title:     "Golden Week",
		Pace:      "moderate",
		Itinerary: sampleItinerary(),
	})
	if err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}

	detail, err := svc.GetTrip(context.Background(), userID, id)
	if err != nil {
		t.Fatalf("GetTrip: %v", err)
	}
	if detail.Title != "Golden Week" || detail.DurationDays != 2 {
		t.Fatalf("detail=%+v", detail.SavedTripResponse)
	}
	if len(detail.Cities) != 2 || detail.Cities[0] != "beijing" {
		t.Fatalf("cities=%v", detail.Cities)
	}
	if len(detail.Itinerary.Days) != 2 || detail.Itinerary.Days[1].CityID != "shanghai" {
		t.Fatalf("itinerary=%+v", detail.Itinerary)
	}
	if detail.TotalRMB != 1750 {
		t.Fatalf("total=%v", detail.TotalRMB)
	}
	// Stored epochs render in China time.
	if !strings.HasSuffix(detail.CreatedAt, "+08:00") {
		t.Fatalf("created_at=%q, want a +08:00 timestamp", detail.CreatedAt)
	}
}

func TestTripService_SaveRejectsEmptyItinerary(t *testing.T) {
	t.Parallel()

	svc := NewTripService(newFakeTripRepo())
	_, err := svc.SaveTrip(context.Background(), uuid.New(), request_models.SaveTripRequest{Title: "Empty"})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}

func TestTripService_OwnershipEnforced(t *testing.T) {
	t.Parallel()

	svc := NewTripService(newFakeTripRepo())
	owner := uuid.New()
	stranger := uuid.New()

	id, err := svc.SaveTrip(context.Background(), owner, request_models.SaveTripRequest{
		Title:     "Private",
		Itinerary: sampleItinerary(),
	})
	if err != nil {
		t.Fatalf("SaveTrip: %v", err)
	}

	if _, err := svc.GetTrip(context.Background(), stranger, id); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("get err=%v, want ErrForbidden", err)
	}
	if err := svc.DeleteTrip(context.Background(), stranger, id); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("delete err=%v, want ErrForbidden", err)
	}

	if err := svc.DeleteTrip(context.Background(), owner, id); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.GetTrip(context.Background(), owner, id); !errors.Is(err, utils.ErrTripNotFound) {
		t.Fatalf("err=%v, want ErrTripNotFound after delete", err)
	}
}

func TestTripService_ListValidatesPaging(t *testing.T) {
	t.Parallel()

	svc := NewTripService(newFakeTripRepo())
	userID := uuid.New()

	if _, err := svc.ListTrips(context.Background(), userID, 0, 10); !errors.Is(err, utils.ErrInvalidPage) {
		t.Fatalf("err=%v, want ErrInvalidPage", err)
	}
	if _, err := svc.ListTrips(context.Background(), userID, 1, 1000); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Fatalf("err=%v, want ErrInvalidPageSize", err)
	}

	trips, err := svc.ListTrips(context.Background(), userID, 1, 10)
	if err != nil {
		t.Fatalf("ListTrips: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("trips=%v, want empty", trips)
	}
}
