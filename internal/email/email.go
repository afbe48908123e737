package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/kafka"
)

// Sender delivers booking notifications. Delivery is a stand-in: the event
// carries no address, so we log what would be sent.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify user %d: %s for flight %d (booking %d)\n", event.UserID, event.Type, event.FlightID, event.BookingID)
	return nil
}
