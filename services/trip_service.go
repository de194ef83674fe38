package services

import (
	"context"
	"time"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/pkg/derive"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// TripService serves the trip list with derived statuses and proxies trip
// mutations to the booking API.
type TripService struct {
	api   upstream.TripAPI
	cache *SnapshotCache
	now   func() time.Time
}

func NewTripService(api upstream.TripAPI, cache *SnapshotCache) *TripService {
	return &TripService{api: api, cache: cache, now: time.Now}
}

// ListTrips returns the user's trips, each annotated with its status relative
// to the current time. Statuses are recomputed on every call, never cached.
func (s *TripService) ListTrips(ctx context.Context, userID string) ([]types.TripView, error) {
	trips, err := s.cache.Trips(ctx, userID, s.api.GetTrips)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	return derive.ClassifyTrips(trips, s.now()), nil
}

// CreateTrip forwards a new trip to the booking API for the given user and
// returns the created trip with its derived status.
func (s *TripService) CreateTrip(ctx context.Context, userID string, req types.CreateTripRequest) (*types.TripView, error) {
	req.UserID = userID

	trip, err := s.api.CreateTrip(ctx, req)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	s.cache.Invalidate(ctx, userID)

	view := types.TripView{
		Trip:   *trip,
		Status: derive.StatusAt(trip.StartDate, s.now()),
	}
	return &view, nil
}

// DeleteTrip removes a trip via the booking API.
func (s *TripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	if err := s.api.DeleteTrip(ctx, tripID); err != nil {
		return apperrors.UpstreamFailed(err)
	}
	s.cache.Invalidate(ctx, userID)
	return nil
}
