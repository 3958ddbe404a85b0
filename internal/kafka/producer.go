package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// TicketEvent is published when a reservation is persisted and relayed
// to the notifications topic for the worker.
type TicketEvent struct {
	Type          string    `json:"type"`
	TicketNumber  string    `json:"ticket_number"`
	UserID        int64     `json:"user_id"`
	FlightCode    string    `json:"flight_code"`
	FlightDate    time.Time `json:"flight_date"`
	SeatNumber    string    `json:"seat_number"`
	PassengerName string    `json:"passenger_name"`
	Price         float64   `json:"price"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
