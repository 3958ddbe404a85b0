package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Domenick1991/mybooking/internal/domain"
	"github.com/Domenick1991/mybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service booking.ReservationUseCase
}

type ticketResponse struct {
	Airline string `json:"aerolinea"`
	Flight  string `json:"vuelo"`
	Date    string `json:"fecha"`
	// The "horra" key and the fixed hour are part of the external
	// API contract; the front-end depends on both.
	Hour   string `json:"horra"`
	Number string `json:"numero"`
}

func NewReservationHandler(service booking.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.GET("/reserva", h.reserve)
}

func (h *ReservationHandler) reserve(c *gin.Context) {
	raw := booking.RawReservation{
		UserID:        c.Query("user_id"),
		Airline:       c.Query("aerolinea"),
		FlightNumber:  c.Query("vuelo"),
		Date:          c.Query("fecha"),
		Seat:          c.Query("asiento"),
		PassengerName: c.Query("nombre"),
		Price:         c.Query("precio"),
	}

	req, err := booking.ParseReservationRequest(raw)
	if err != nil {
		if errors.Is(err, booking.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields for booking"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Reserve(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrSeatTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Seat %s already booked for this flight", req.Seat)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "A database error occurred"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"boleto": ticketResponse{
		Airline: raw.Airline,
		Flight:  raw.FlightNumber,
		Date:    raw.Date,
		Hour:    "1400",
		Number:  created.TicketNumber,
	}})
}
