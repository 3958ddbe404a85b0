package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/mybooking/config"
	"github.com/Domenick1991/mybooking/internal/auth"
	"github.com/Domenick1991/mybooking/internal/bootstrap"
	"github.com/Domenick1991/mybooking/internal/cache"
	"github.com/Domenick1991/mybooking/internal/kafka"
	"github.com/Domenick1991/mybooking/internal/repository"
	"github.com/Domenick1991/mybooking/internal/service/account"
	"github.com/Domenick1991/mybooking/internal/service/booking"
	"github.com/Domenick1991/mybooking/internal/service/catalog"
	"github.com/Domenick1991/mybooking/internal/service/payment"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.CacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	opts := []booking.ReservationServiceOption{
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	}
	if cfg.Booking.Mode == "mock" {
		log.Println("booking mode is mock, reservations will not be persisted")
		opts = append(opts, booking.WithMockMode())
	}

	reservationService := booking.NewReservationService(
		bookingRepo,
		redisCache,
		producer,
		cfg.Kafka.TicketsTopic,
		time.Duration(cfg.Booking.HoldTTLSeconds)*time.Second,
		opts...,
	)
	accountService := account.NewAccountService(userRepo, auth.NewBcryptHasher(cfg.Booking.BcryptCost))
	catalogService := catalog.NewCatalogService()
	paymentService := payment.NewPaymentService()

	if err := bootstrap.Run(ctx, cfg, catalogService, accountService, reservationService, paymentService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
