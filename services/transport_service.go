package services

import (
	"context"
	"fmt"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/pkg/derive"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// TransportService handles flight, train and bus search and booking. The
// three families share the same search shape and booking math, so one service
// keyed by transport mode covers them all.
type TransportService struct {
	api upstream.TransportAPI
}

func NewTransportService(api upstream.TransportAPI) *TransportService {
	return &TransportService{api: api}
}

func (s *TransportService) SearchFlights(ctx context.Context, search types.TransportSearch) ([]types.Flight, error) {
	flights, err := s.api.SearchFlights(ctx, search)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	return flights, nil
}

func (s *TransportService) SearchTrains(ctx context.Context, search types.TransportSearch) ([]types.Train, error) {
	trains, err := s.api.SearchTrains(ctx, search)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	return trains, nil
}

func (s *TransportService) SearchBuses(ctx context.Context, search types.TransportSearch) ([]types.Bus, error) {
	buses, err := s.api.SearchBuses(ctx, search)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	return buses, nil
}

// Book reserves seats on a flight, train or bus. The total is the unit price
// times the passenger count, computed here and never taken from the client.
func (s *TransportService) Book(ctx context.Context, mode upstream.TransportMode, userID string, req types.BookTransportRequest) (*types.TransportBooking, error) {
	if err := validateModeID(mode, req); err != nil {
		return nil, err
	}

	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	booking := types.TransportBooking{
		UserID:     userID,
		FlightID:   req.FlightID,
		TrainID:    req.TrainID,
		BusID:      req.BusID,
		Passengers: passengers,
		SeatClass:  req.SeatClass,
		TotalPrice: derive.SeatTotal(req.Price, req.Passengers),
	}

	created, err := s.api.CreateTransportBooking(ctx, mode, booking)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	return created, nil
}

// ListBookings returns the user's bookings for one transport mode.
func (s *TransportService) ListBookings(ctx context.Context, mode upstream.TransportMode, userID string) ([]types.TransportBooking, error) {
	if !mode.IsValid() {
		return nil, apperrors.ValidationFailed("Unknown transport mode", string(mode))
	}
	bookings, err := s.api.GetTransportBookings(ctx, mode, userID)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	return bookings, nil
}

// validateModeID requires the booking to reference exactly the entity its
// mode implies, e.g. a flight booking must carry a flight ID and nothing else.
func validateModeID(mode upstream.TransportMode, req types.BookTransportRequest) error {
	var want string
	switch mode {
	case upstream.ModeFlight:
		want = req.FlightID
	case upstream.ModeTrain:
		want = req.TrainID
	case upstream.ModeBus:
		want = req.BusID
	default:
		return apperrors.ValidationFailed("Unknown transport mode", string(mode))
	}
	if want == "" {
		return apperrors.ValidationFailed(
			"Missing transport reference",
			fmt.Sprintf("a %s booking requires the matching ID", mode))
	}

	set := 0
	for _, id := range []string{req.FlightID, req.TrainID, req.BusID} {
		if id != "" {
			set++
		}
	}
	if set != 1 {
		return apperrors.ValidationFailed(
			"Ambiguous transport reference",
			"exactly one of flightId, trainId or busId must be set")
	}
	return nil
}
