package services

import (
	"context"

	apperrors "github.com/TravelPlannerHQ/travel-planner-gateway/errors"
	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/pkg/derive"
	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// StayService handles hotel search and booking. Stay totals are always
// computed here from the unit price and the requested dates; the total a
// client might send is never trusted.
type StayService struct {
	api upstream.StayAPI
}

func NewStayService(api upstream.StayAPI) *StayService {
	return &StayService{api: api}
}

// Search queries the booking API for hotels and attaches a quote for the
// requested stay to every candidate, so the client can compare totals without
// doing any math.
func (s *StayService) Search(ctx context.Context, search types.StaySearch) ([]types.HotelOffer, error) {
	hotels, err := s.api.SearchHotels(ctx, search)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}

	nights := derive.Nights(search.CheckInDate, search.CheckOutDate)
	offers := make([]types.HotelOffer, len(hotels))
	for i, hotel := range hotels {
		offers[i] = types.HotelOffer{
			Hotel: hotel,
			Quote: types.StayQuote{
				Nights:     nights,
				TotalPrice: derive.StayTotal(hotel.PricePerNight, search.Rooms, nights),
			},
		}
	}
	return offers, nil
}

// Book reserves a hotel for the user. The total price is derived from the
// per-night price, room count and stay length at this moment; once the
// booking API stores it, it is never recomputed.
func (s *StayService) Book(ctx context.Context, userID string, req types.BookHotelRequest) (*types.HotelBooking, error) {
	nights := derive.Nights(req.CheckInDate, req.CheckOutDate)

	booking := types.HotelBooking{
		UserID:       userID,
		HotelID:      req.HotelID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       req.Guests,
		Rooms:        req.Rooms,
		TotalPrice:   derive.StayTotal(req.PricePerNight, req.Rooms, nights),
	}

	created, err := s.api.CreateHotelBooking(ctx, booking)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	return created, nil
}

// ListBookings returns the user's hotel bookings as stored by the booking API.
func (s *StayService) ListBookings(ctx context.Context, userID string) ([]types.HotelBooking, error) {
	bookings, err := s.api.GetHotelBookings(ctx, userID)
	if err != nil {
		return nil, apperrors.UpstreamFailed(err)
	}
	return bookings, nil
}
