package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/mybooking/internal/domain"
	"github.com/Domenick1991/mybooking/internal/kafka"
	"github.com/Domenick1991/mybooking/internal/repository"
	"github.com/google/uuid"
)

type ReservationUseCase interface {
	Reserve(ctx context.Context, req ReservationRequest) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type Cache interface {
	AcquireSeatHold(ctx context.Context, flightCode string, flightDate time.Time, seat string, ttl time.Duration) (bool, error)
	ReleaseSeatHold(ctx context.Context, flightCode string, flightDate time.Time, seat string) error
	GetUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
	SetUserBookings(ctx context.Context, userID int64, bookings []domain.Booking) error
	InvalidateUserBookings(ctx context.Context, userID int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	bookings           repository.BookingRepository
	cache              Cache
	producer           Producer
	ticketsTopic       string
	notificationsTopic string
	holdTTL            time.Duration
	persist            bool
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

// WithMockMode makes Reserve issue tickets without touching the store,
// reproducing the observed non-persisting reservation endpoint.
func WithMockMode() ReservationServiceOption {
	return func(s *ReservationService) {
		s.persist = false
	}
}

func NewReservationService(
	bookings repository.BookingRepository,
	cache Cache,
	producer Producer,
	ticketsTopic string,
	holdTTL time.Duration,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		bookings:     bookings,
		cache:        cache,
		producer:     producer,
		ticketsTopic: ticketsTopic,
		holdTTL:      holdTTL,
		persist:      true,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Reserve persists one booking for req unless the seat is already
// taken on that flight and date. The repository's unique constraint is
// the authority on conflicts; the SeatTaken query and the optional
// cache hold only fail fast.
func (s *ReservationService) Reserve(ctx context.Context, req ReservationRequest) (*domain.Booking, error) {
	booking := &domain.Booking{
		UserID:        req.UserID,
		FlightID:      req.FlightNumber,
		FlightCode:    req.FlightCode(),
		FlightDate:    req.FlightDate,
		SeatNumber:    req.Seat,
		PassengerName: req.PassengerName,
		TicketNumber:  newTicketNumber(),
		Price:         req.Price,
	}

	if !s.persist {
		booking.BookingTime = time.Now()
		s.publish(ctx, "ticket_issued", booking)
		return booking, nil
	}

	held := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSeatHold(ctx, booking.FlightCode, booking.FlightDate, booking.SeatNumber, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrSeatTaken
		}
		held = true
	}

	taken, err := s.bookings.SeatTaken(ctx, booking.FlightCode, booking.FlightDate, booking.SeatNumber)
	if err != nil {
		s.releaseHold(ctx, booking, held)
		return nil, err
	}
	if taken {
		s.releaseHold(ctx, booking, held)
		return nil, domain.ErrSeatTaken
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.releaseHold(ctx, booking, held)
		return nil, err
	}

	s.publish(ctx, "ticket_issued", booking)
	if s.cache != nil {
		_ = s.cache.InvalidateUserBookings(ctx, booking.UserID)
	}
	s.releaseHold(ctx, booking, held)
	return booking, nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetUserBookings(ctx, userID); err == nil && cached != nil {
			return cached, nil
		}
	}

	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetUserBookings(ctx, userID, bookings)
	}
	return bookings, nil
}

func (s *ReservationService) releaseHold(ctx context.Context, booking *domain.Booking, held bool) {
	if held {
		_ = s.cache.ReleaseSeatHold(ctx, booking.FlightCode, booking.FlightDate, booking.SeatNumber)
	}
}

func (s *ReservationService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.ticketsTopic == "" {
		return
	}
	event := kafka.TicketEvent{
		Type:          eventType,
		TicketNumber:  booking.TicketNumber,
		UserID:        booking.UserID,
		FlightCode:    booking.FlightCode,
		FlightDate:    booking.FlightDate,
		SeatNumber:    booking.SeatNumber,
		PassengerName: booking.PassengerName,
		Price:         booking.Price,
	}
	if err := s.producer.Publish(ctx, s.ticketsTopic, booking.TicketNumber, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for ticket %s: %v", eventType, booking.TicketNumber, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.TicketNumber, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for ticket %s: %v", eventType, booking.TicketNumber, err)
		}
	}
}

// newTicketNumber returns the human-presentable ticket identifier: the
// first 10 hex digits of a random UUID, uppercased. Uniqueness is best
// effort; it is not a database key.
func newTicketNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:10])
}

var _ ReservationUseCase = (*ReservationService)(nil)
