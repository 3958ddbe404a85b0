package api

import (
	"net/http"

	"github.com/Domenick1991/mybooking/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

type flightListResponse struct {
	FlightList catalog.FlightList `json:"lista_vuelos"`
}

type seatMapResponse struct {
	SeatMap catalog.SeatMap `json:"lista_asientos"`
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.flights)
	router.GET("/seats", h.seats)
}

func (h *CatalogHandler) flights(c *gin.Context) {
	list := h.service.Flights(catalog.FlightQuery{
		Origin:      c.DefaultQuery("origen", "GUA"),
		Destination: c.DefaultQuery("destino", "MIA"),
		Date:        c.DefaultQuery("fecha", "20251115"),
		Format:      c.DefaultQuery("formato", "JSON"),
	})
	c.JSON(http.StatusOK, flightListResponse{FlightList: list})
}

func (h *CatalogHandler) seats(c *gin.Context) {
	seats := h.service.Seats(catalog.SeatQuery{
		Airline: c.DefaultQuery("aerolinea", "AA"),
		Flight:  c.DefaultQuery("vuelo", "926"),
		Date:    c.DefaultQuery("fecha", "20251115"),
		Format:  c.DefaultQuery("formato", "JSON"),
	})
	c.JSON(http.StatusOK, seatMapResponse{SeatMap: seats})
}
