package upstream

import (
	"context"
	"fmt"

	"github.com/TravelPlannerHQ/travel-planner-gateway/types"
)

// StayAPI covers the hotel endpoints of the booking API.
type StayAPI interface {
	SearchHotels(ctx context.Context, search types.StaySearch) ([]types.Hotel, error)
	GetHotelBookings(ctx context.Context, userID string) ([]types.HotelBooking, error)
	CreateHotelBooking(ctx context.Context, booking types.HotelBooking) (*types.HotelBooking, error)
}

// TransportMode selects a transport endpoint family on the booking API.
type TransportMode string

const (
	ModeFlight TransportMode = "flights"
	ModeTrain  TransportMode = "trains"
	ModeBus    TransportMode = "buses"
)

// IsValid checks if the mode maps to a booking API endpoint family.
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeFlight, ModeTrain, ModeBus:
		return true
	default:
		return false
	}
}

// TransportAPI covers the flight, train and bus endpoints of the booking API.
// The three families share one URL shape, so one set of methods keyed by mode
// covers them all.
type TransportAPI interface {
	SearchFlights(ctx context.Context, search types.TransportSearch) ([]types.Flight, error)
	SearchTrains(ctx context.Context, search types.TransportSearch) ([]types.Train, error)
	SearchBuses(ctx context.Context, search types.TransportSearch) ([]types.Bus, error)
	GetTransportBookings(ctx context.Context, mode TransportMode, userID string) ([]types.TransportBooking, error)
	CreateTransportBooking(ctx context.Context, mode TransportMode, booking types.TransportBooking) (*types.TransportBooking, error)
}

func (c *Client) SearchHotels(ctx context.Context, search types.StaySearch) ([]types.Hotel, error) {
	hotels := []types.Hotel{}
	if err := c.post(ctx, "/api/hotels/search", search, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (c *Client) GetHotelBookings(ctx context.Context, userID string) ([]types.HotelBooking, error) {
	bookings := []types.HotelBooking{}
	if err := c.get(ctx, fmt.Sprintf("/api/hotels/bookings/user/%s", userID), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateHotelBooking(ctx context.Context, booking types.HotelBooking) (*types.HotelBooking, error) {
	var created types.HotelBooking
	if err := c.post(ctx, "/api/hotels/bookings", booking, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) SearchFlights(ctx context.Context, search types.TransportSearch) ([]types.Flight, error) {
	flights := []types.Flight{}
	if err := c.post(ctx, "/api/flights/search", search, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *Client) SearchTrains(ctx context.Context, search types.TransportSearch) ([]types.Train, error) {
	trains := []types.Train{}
	if err := c.post(ctx, "/api/trains/search", search, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

func (c *Client) SearchBuses(ctx context.Context, search types.TransportSearch) ([]types.Bus, error) {
	buses := []types.Bus{}
	if err := c.post(ctx, "/api/buses/search", search, &buses); err != nil {
		return nil, err
	}
	return buses, nil
}

func (c *Client) GetTransportBookings(ctx context.Context, mode TransportMode, userID string) ([]types.TransportBooking, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("unknown transport mode: %s", mode)
	}
	bookings := []types.TransportBooking{}
	if err := c.get(ctx, fmt.Sprintf("/api/%s/bookings/user/%s", mode, userID), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateTransportBooking(ctx context.Context, mode TransportMode, booking types.TransportBooking) (*types.TransportBooking, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("unknown transport mode: %s", mode)
	}
	var created types.TransportBooking
	if err := c.post(ctx, fmt.Sprintf("/api/%s/bookings", mode), booking, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
