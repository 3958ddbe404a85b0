package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/mybooking/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	fmt.Printf("send itinerary for ticket %s to user %d: flight %s on %s seat %s\n",
		event.TicketNumber, event.UserID, event.FlightCode, event.FlightDate.Format("2006-01-02"), event.SeatNumber)
	return nil
}
