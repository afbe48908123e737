package booking

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/repository"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	eventsTopic        string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

// WithNotificationsTopic mirrors every event onto a second topic consumed by
// the notification worker.
func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

type CreateBookingInput struct {
	UserID   int64 `json:"user_id"`
	FlightID int64 `json:"flight_id"`
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, eventsTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{bookings: bookings, producer: producer, eventsTopic: eventsTopic}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking inserts the booking as given. Referenced user and flight ids
// are not checked for existence and duplicates are allowed; the event
// publish is best-effort and never fails the booking.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.UserID <= 0 {
		return nil, errors.New("user_id must be positive")
	}
	if input.FlightID <= 0 {
		return nil, errors.New("flight_id must be positive")
	}

	booking := &domain.Booking{UserID: input.UserID, FlightID: input.FlightID}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("publish booking_created for booking %d: %v", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:      eventType,
		BookingID: booking.ID,
		UserID:    booking.UserID,
		FlightID:  booking.FlightID,
		CreatedAt: time.Now(),
	}
	// Key by user so a consumer sees one user's bookings in order.
	key := "user-" + strconv.FormatInt(booking.UserID, 10)
	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
