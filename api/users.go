package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/mybooking/internal/domain"
	"github.com/Domenick1991/mybooking/internal/service/account"
	"github.com/Domenick1991/mybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	accounts account.AccountUseCase
	bookings booking.ReservationUseCase
}

type registerRequest struct {
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	TravelDocument *string `json:"travel_document"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type bookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	FlightID      int64   `json:"flight_id"`
	FlightCode    string  `json:"flight_code"`
	FlightDate    string  `json:"flight_date"`
	SeatNumber    string  `json:"seat_number"`
	PassengerName string  `json:"passenger_name"`
	TicketNumber  string  `json:"ticket_number"`
	Price         float64 `json:"price"`
	BookingTime   string  `json:"booking_time"`
}

func NewUserHandler(accounts account.AccountUseCase, bookings booking.ReservationUseCase) *UserHandler {
	return &UserHandler{accounts: accounts, bookings: bookings}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.GET("/users/:id/bookings", h.listBookings)
}

func (h *UserHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	_, err := h.accounts.Register(c.Request.Context(), account.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		TravelDocument: req.TravelDocument,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userSummary{ID: user.ID, FullName: user.FullName, Email: user.Email},
	})
}

func (h *UserHandler) listBookings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	bookings, err := h.bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal error occurred"})
		return
	}

	response := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, bookingResponse{
			ID:            b.ID,
			UserID:        b.UserID,
			FlightID:      b.FlightID,
			FlightCode:    b.FlightCode,
			FlightDate:    b.FlightDate.Format("2006-01-02"),
			SeatNumber:    b.SeatNumber,
			PassengerName: b.PassengerName,
			TicketNumber:  b.TicketNumber,
			Price:         b.Price,
			BookingTime:   b.BookingTime.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, response)
}
