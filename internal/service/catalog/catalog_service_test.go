package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogService_Flights_EchoesQuery(t *testing.T) {
	service := NewCatalogService()

	list := service.Flights(FlightQuery{Origin: "SAL", Destination: "LAX", Date: "20260101", Format: "JSON"})

	assert.Equal(t, "SAL", list.Origin)
	assert.Equal(t, "LAX", list.Destination)
	assert.Equal(t, "20260101", list.Date)
	assert.Equal(t, "AA", list.Airline)
	assert.Equal(t, []Flight{
		{Number: "926", Hour: "0830", Price: "380.50"},
		{Number: "1231", Hour: "1400", Price: "410.00"},
	}, list.Flights)
}

func TestCatalogService_Seats_EchoesQuery(t *testing.T) {
	service := NewCatalogService()

	seats := service.Seats(SeatQuery{Airline: "UA", Flight: "1231", Date: "20260101", Format: "JSON"})

	assert.Equal(t, "UA", seats.Airline)
	assert.Equal(t, "1231", seats.Number)
	assert.Equal(t, "20260101", seats.Date)
	assert.Equal(t, "GUA", seats.Origin)
	assert.Equal(t, "MIA", seats.Destination)
	assert.Equal(t, "Boeing 737", seats.Aircraft)
	assert.Len(t, seats.Seats, 6)
	assert.Equal(t, Seat{Row: "10", Position: "B"}, seats.Seats[5])
}
