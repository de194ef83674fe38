package types

// TripStatus is derived from a trip's start date and the current time. It is
// recomputed on every read and never stored.
type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "Upcoming"  // Start date is still in the future
	TripStatusCompleted TripStatus = "Completed" // Start date has passed (or equals now)
)

// String provides a string representation of the status
func (ts TripStatus) String() string {
	return string(ts)
}

// IsValid checks if the status is a valid trip status
func (ts TripStatus) IsValid() bool {
	switch ts {
	case TripStatusUpcoming, TripStatusCompleted:
		return true
	default:
		return false
	}
}

// Trip is a planned trip as returned by the booking API. StartDate and EndDate
// are date strings (YYYY-MM-DD or a full timestamp); the API guarantees
// StartDate <= EndDate and the gateway does not re-validate it.
type Trip struct {
	TripID      string  `json:"tripId"`
	UserID      string  `json:"userId,omitempty"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget,omitempty"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// TripView is a trip decorated with its derived status for presentation.
type TripView struct {
	Trip
	Status TripStatus `json:"status"`
}

// CreateTripRequest is the payload forwarded to the booking API when a user
// plans a new trip.
type CreateTripRequest struct {
	UserID      string  `json:"userId"`
	Destination string  `json:"destination" binding:"required"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	Budget      float64 `json:"budget,omitempty"`
	Description string  `json:"description,omitempty"`
}
