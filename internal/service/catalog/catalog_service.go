// Package catalog echoes the mock flight and seat data the external
// airline APIs would return. There is no state behind it; the response
// repeats the query parameters around a fixed flight list and seat map.
package catalog

type CatalogUseCase interface {
	Flights(query FlightQuery) FlightList
	Seats(query SeatQuery) SeatMap
}

type FlightQuery struct {
	Origin      string
	Destination string
	Date        string
	Format      string
}

type SeatQuery struct {
	Airline string
	Flight  string
	Date    string
	Format  string
}

type Flight struct {
	Number string `json:"numero"`
	Hour   string `json:"hora"`
	Price  string `json:"precio"`
}

type FlightList struct {
	Airline     string   `json:"aerolinea"`
	Date        string   `json:"fecha"`
	Origin      string   `json:"origen"`
	Destination string   `json:"destino"`
	Flights     []Flight `json:"vuelos"`
}

type Seat struct {
	Row      string `json:"fila"`
	Position string `json:"posicion"`
}

type SeatMap struct {
	Airline     string `json:"aerolinea"`
	Number      string `json:"numero"`
	Date        string `json:"fecha"`
	Origin      string `json:"origen"`
	Destination string `json:"destino"`
	Aircraft    string `json:"avion"`
	Seats       []Seat `json:"asientos"`
}

type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

func (s *CatalogService) Flights(query FlightQuery) FlightList {
	return FlightList{
		Airline:     "AA",
		Date:        query.Date,
		Origin:      query.Origin,
		Destination: query.Destination,
		Flights: []Flight{
			{Number: "926", Hour: "0830", Price: "380.50"},
			{Number: "1231", Hour: "1400", Price: "410.00"},
		},
	}
}

func (s *CatalogService) Seats(query SeatQuery) SeatMap {
	return SeatMap{
		Airline:     query.Airline,
		Number:      query.Flight,
		Date:        query.Date,
		Origin:      "GUA",
		Destination: "MIA",
		Aircraft:    "Boeing 737",
		Seats: []Seat{
			{Row: "1", Position: "A"},
			{Row: "1", Position: "B"},
			{Row: "2", Position: "C"},
			{Row: "2", Position: "D"},
			{Row: "5", Position: "A"},
			{Row: "10", Position: "B"},
		},
	}
}

var _ CatalogUseCase = (*CatalogService)(nil)
