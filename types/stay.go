package types

// Hotel is an accommodation candidate returned by the booking API's hotel
// search. Amenities is a comma-delimited string, split at presentation time.
type Hotel struct {
	HotelID       string  `json:"hotelId"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
	Rating        float64 `json:"rating"`
	Amenities     string  `json:"amenities,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// StaySearch is the ephemeral input for a hotel search. It lives for one
// search-to-booking interaction and is never persisted by the gateway.
type StaySearch struct {
	Location     string `json:"location" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests"`
	Rooms        int    `json:"rooms"`
}

// StayQuote carries the derived stay figures for one hotel candidate.
type StayQuote struct {
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
}

// HotelOffer pairs a hotel candidate with the quote for the requested stay.
type HotelOffer struct {
	Hotel
	Quote StayQuote `json:"quote"`
}

// HotelBooking is a confirmed hotel reservation. TotalPrice is computed once
// at booking time and trusted thereafter; it is never recomputed from the
// hotel's unit price.
type HotelBooking struct {
	BookingID    string  `json:"bookingId,omitempty"`
	UserID       string  `json:"userId"`
	HotelID      string  `json:"hotelId"`
	Hotel        *Hotel  `json:"hotel,omitempty"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Guests       int     `json:"guests"`
	Rooms        int     `json:"rooms"`
	TotalPrice   float64 `json:"totalPrice"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// BookHotelRequest is the client payload for booking a hotel out of a search
// result. The gateway computes the total server-side; clients never supply it.
type BookHotelRequest struct {
	UserID        string  `json:"userId"`
	HotelID       string  `json:"hotelId" binding:"required"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gte=0"`
	CheckInDate   string  `json:"checkInDate" binding:"required"`
	CheckOutDate  string  `json:"checkOutDate" binding:"required"`
	Guests        int     `json:"guests"`
	Rooms         int     `json:"rooms"`
}
