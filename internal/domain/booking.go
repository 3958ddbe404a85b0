package domain

import "time"

// Booking is one persisted seat reservation. FlightCode is the airline
// code concatenated with the flight number ("AA926") and is the
// uniqueness scope for seats together with FlightDate and SeatNumber.
type Booking struct {
	ID            int64
	UserID        int64
	FlightID      int64
	FlightCode    string
	FlightDate    time.Time
	SeatNumber    string
	PassengerName string
	TicketNumber  string
	Price         float64
	BookingTime   time.Time
}
