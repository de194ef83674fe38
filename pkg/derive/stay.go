package derive

import "math"

const hoursPerDay = 24

// Nights computes the number of nights between check-in and check-out as the
// ceiling of the calendar-day difference, so a checkout 25 hours after
// check-in counts as 2 nights. The floor is always 1: missing or unparseable
// dates and a check-out at or before check-in all yield 1 night rather than
// an error, so a malformed search never blocks booking.
func Nights(checkIn, checkOut string) int {
	in, okIn := ParseWhen(checkIn)
	out, okOut := ParseWhen(checkOut)
	if !okIn || !okOut {
		return 1
	}

	nights := int(math.Ceil(out.Sub(in).Hours() / hoursPerDay))
	if nights < 1 {
		return 1
	}
	return nights
}

// StayTotal prices a multi-room, multi-night stay: pricePerNight × rooms ×
// nights. Rooms and nights are clamped to at least 1 and a negative unit
// price is treated as 0. The result keeps full float precision; two-decimal
// rounding is a presentation concern.
func StayTotal(pricePerNight float64, rooms, nights int) float64 {
	if pricePerNight < 0 {
		pricePerNight = 0
	}
	if rooms < 1 {
		rooms = 1
	}
	if nights < 1 {
		nights = 1
	}
	return pricePerNight * float64(rooms) * float64(nights)
}

// SeatTotal prices a flight, train or bus reservation: unit price ×
// passengers, with the same clamping rules as StayTotal.
func SeatTotal(price float64, passengers int) float64 {
	if price < 0 {
		price = 0
	}
	if passengers < 1 {
		passengers = 1
	}
	return price * float64(passengers)
}
