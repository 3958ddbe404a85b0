package booking

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrMissingFields is returned by ParseReservationRequest when any
// required parameter is absent. Handlers answer 400 with the exact
// message the front-end expects.
var ErrMissingFields = errors.New("missing required fields for booking")

const dateLayout = "20060102"

// RawReservation carries the reservation query parameters exactly as
// they arrive on the wire.
type RawReservation struct {
	UserID        string
	Airline       string
	FlightNumber  string
	Date          string
	Seat          string
	PassengerName string
	Price         string
}

// ReservationRequest is the typed, validated form of a reservation.
// It is built once, before any store access, and never mutated.
type ReservationRequest struct {
	UserID        int64
	Airline       string
	FlightNumber  int64
	FlightDate    time.Time
	Seat          string
	PassengerName string
	Price         float64
}

// FlightCode is the seat-uniqueness scope: airline code concatenated
// with the flight number, e.g. "AA926".
func (r ReservationRequest) FlightCode() string {
	return fmt.Sprintf("%s%d", r.Airline, r.FlightNumber)
}

func ParseReservationRequest(raw RawReservation) (ReservationRequest, error) {
	if raw.UserID == "" || raw.Airline == "" || raw.FlightNumber == "" || raw.Date == "" ||
		raw.Seat == "" || raw.PassengerName == "" || raw.Price == "" {
		return ReservationRequest{}, ErrMissingFields
	}

	userID, err := strconv.ParseInt(raw.UserID, 10, 64)
	if err != nil {
		return ReservationRequest{}, fmt.Errorf("invalid user_id %q", raw.UserID)
	}
	flightNumber, err := strconv.ParseInt(raw.FlightNumber, 10, 64)
	if err != nil {
		return ReservationRequest{}, fmt.Errorf("invalid flight number %q", raw.FlightNumber)
	}
	flightDate, err := time.Parse(dateLayout, raw.Date)
	if err != nil {
		return ReservationRequest{}, fmt.Errorf("invalid date %q, expected YYYYMMDD", raw.Date)
	}
	price, err := strconv.ParseFloat(raw.Price, 64)
	if err != nil || price < 0 {
		return ReservationRequest{}, fmt.Errorf("invalid price %q", raw.Price)
	}

	return ReservationRequest{
		UserID:        userID,
		Airline:       raw.Airline,
		FlightNumber:  flightNumber,
		FlightDate:    flightDate,
		Seat:          raw.Seat,
		PassengerName: raw.PassengerName,
		Price:         price,
	}, nil
}
