package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/mybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	SeatTaken(ctx context.Context, flightCode string, flightDate time.Time, seat string) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Create inserts the booking row. The bookings_flight_seat_key unique
// constraint is the authoritative seat-uniqueness guard; a violation
// surfaces as domain.ErrSeatTaken regardless of what the fast-path
// check saw earlier.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (user_id, flight_id, flight_code, flight_date, seat_number, passenger_name, ticket_number, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, booking_time`,
		booking.UserID, booking.FlightID, booking.FlightCode, booking.FlightDate,
		booking.SeatNumber, booking.PassengerName, booking.TicketNumber, booking.Price).
		Scan(&booking.ID, &booking.BookingTime)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatTaken
		}
		return err
	}
	return nil
}

func (r *PGBookingRepository) SeatTaken(ctx context.Context, flightCode string, flightDate time.Time, seat string) (bool, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM bookings WHERE flight_code=$1 AND flight_date=$2 AND seat_number=$3`,
		flightCode, flightDate, seat).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, flight_id, flight_code, flight_date, seat_number, passenger_name, ticket_number, price, booking_time
		FROM bookings WHERE user_id=$1 ORDER BY flight_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.FlightCode, &b.FlightDate, &b.SeatNumber, &b.PassengerName, &b.TicketNumber, &b.Price, &b.BookingTime); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
