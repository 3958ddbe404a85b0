package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/mybooking/config"
	"github.com/Domenick1991/mybooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	bookingsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, bookingsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		bookingsTTL: bookingsTTL,
	}
}

// AcquireSeatHold takes a short-lived exclusive hold on a seat while
// the reservation insert is in flight. It narrows the check-then-insert
// window between concurrent identical requests; the database unique
// constraint remains the authority.
func (c *RedisCache) AcquireSeatHold(ctx context.Context, flightCode string, flightDate time.Time, seat string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatHoldKey(flightCode, flightDate, seat), "held", ttl).Result()
}

func (c *RedisCache) ReleaseSeatHold(ctx context.Context, flightCode string, flightDate time.Time, seat string) error {
	return c.client.Del(ctx, seatHoldKey(flightCode, flightDate, seat)).Err()
}

func (c *RedisCache) GetUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	data, err := c.client.Get(ctx, userBookingsKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *RedisCache) SetUserBookings(ctx context.Context, userID int64, bookings []domain.Booking) error {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userBookingsKey(userID), payload, c.bookingsTTL).Err()
}

func (c *RedisCache) InvalidateUserBookings(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, userBookingsKey(userID)).Err()
}

func seatHoldKey(flightCode string, flightDate time.Time, seat string) string {
	return fmt.Sprintf("hold:flight:%s:%s:seat:%s", flightCode, flightDate.Format("20060102"), seat)
}

func userBookingsKey(userID int64) string {
	return fmt.Sprintf("cache:bookings:user:%d", userID)
}
