package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"luxing/internal/models/db_models"
	"luxing/internal/models/request_models"
	"luxing/internal/models/response_models"
	"luxing/internal/repositories"
	"luxing/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userID uuid.UUID, request request_models.SaveTripRequest) (string, error)
	GetTrip(ctx context.Context, userID uuid.UUID, tripID string) (response_models.SavedTripDetailResponse, error)
	ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.SavedTripResponse, error)
	DeleteTrip(ctx context.Context, userID uuid.UUID, tripID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) SaveTrip(ctx context.Context, userID uuid.UUID, request request_models.SaveTripRequest) (string, error) {
	if len(request.Itinerary.Days) == 0 {
		return "", utils.ErrInvalidInput
	}

	document, err := json.Marshal(request.Itinerary)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	trip := &db_models.SavedTrip{
		UserID:       userID,
		Title:        request.Title,
		DurationDays: len(request.Itinerary.Days),
		Cities:       request.Itinerary.Cities,
		Pace:         string(request.Pace),
		Generator:    request.Itinerary.Generator,
		TotalRMB:     request.Itinerary.TotalRMB,
		TotalUSD:     request.Itinerary.TotalUSD,
		Document:     document,
	}

	id, err := t.tripRepo.Insert(ctx, trip)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (t *TripService) GetTrip(ctx context.Context, userID uuid.UUID, tripID string) (response_models.SavedTripDetailResponse, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return response_models.SavedTripDetailResponse{}, utils.ErrDatabaseError
	}
	if trip == nil {
		return response_models.SavedTripDetailResponse{}, utils.ErrTripNotFound
	}
	if trip.UserID != userID {
		return response_models.SavedTripDetailResponse{}, utils.ErrForbidden
	}

	detail := response_models.SavedTripDetailResponse{
		SavedTripResponse: toSavedTripResponse(trip),
	}
	if err := json.Unmarshal(trip.Document, &detail.Itinerary); err != nil {
		return response_models.SavedTripDetailResponse{}, utils.ErrDatabaseError
	}
	return detail, nil
}

func (t *TripService) ListTrips(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.SavedTripResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	trips, err := t.tripRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SavedTripResponse, 0, len(trips))
	for i := range trips {
		result = append(result, toSavedTripResponse(&trips[i]))
	}
	return result, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userID uuid.UUID, tripID string) error {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if trip.UserID != userID {
		return utils.ErrForbidden
	}

	if err := t.tripRepo.Delete(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toSavedTripResponse(trip *db_models.SavedTrip) response_models.SavedTripResponse {
	return response_models.SavedTripResponse{
		ID:           trip.ID.String(),
		Title:        trip.Title,
		DurationDays: trip.DurationDays,
		Cities:       trip.Cities,
		Pace:         trip.Pace,
		Generator:    trip.Generator,
		TotalRMB:     trip.TotalRMB,
		TotalUSD:     trip.TotalUSD,
		CreatedAt:    utils.FormatRFC3339CN(utils.FromUnixSecondsCN(trip.CreatedAt)),
	}
}
