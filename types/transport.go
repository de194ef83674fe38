package types

// Flight is a flight candidate returned by the booking API.
type Flight struct {
	FlightID      string  `json:"flightId"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departureDate"`
	DepartureTime string  `json:"departureTime,omitempty"`
	ArrivalTime   string  `json:"arrivalTime,omitempty"`
	Price         float64 `json:"price"`
}

// Train is a train candidate returned by the booking API.
type Train struct {
	TrainID       string  `json:"trainId"`
	Operator      string  `json:"operator"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departureDate"`
	DepartureTime string  `json:"departureTime,omitempty"`
	Price         float64 `json:"price"`
}

// Bus is a bus candidate returned by the booking API.
type Bus struct {
	BusID         string  `json:"busId"`
	Operator      string  `json:"operator"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departureDate"`
	DepartureTime string  `json:"departureTime,omitempty"`
	Price         float64 `json:"price"`
}

// TransportSearch is the shared search input for flights, trains and buses.
type TransportSearch struct {
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required"`
	Passengers    int    `json:"passengers"`
	SeatClass     string `json:"seatClass,omitempty"`
}

// TransportBooking is a confirmed seat reservation on a flight, train or bus.
// Exactly one of FlightID/TrainID/BusID is set. TotalPrice is the unit price
// times passenger count, computed at booking time and trusted thereafter.
type TransportBooking struct {
	BookingID  string  `json:"bookingId,omitempty"`
	UserID     string  `json:"userId"`
	FlightID   string  `json:"flightId,omitempty"`
	TrainID    string  `json:"trainId,omitempty"`
	BusID      string  `json:"busId,omitempty"`
	Passengers int     `json:"passengers"`
	SeatClass  string  `json:"seatClass,omitempty"`
	TotalPrice float64 `json:"totalPrice"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// BookTransportRequest is the client payload for booking a seat out of a
// search result. The gateway computes the total server-side.
type BookTransportRequest struct {
	UserID     string  `json:"userId"`
	FlightID   string  `json:"flightId,omitempty"`
	TrainID    string  `json:"trainId,omitempty"`
	BusID      string  `json:"busId,omitempty"`
	Price      float64 `json:"price" binding:"required,gte=0"`
	Passengers int     `json:"passengers"`
	SeatClass  string  `json:"seatClass,omitempty"`
}
