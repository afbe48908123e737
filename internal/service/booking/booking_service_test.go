package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBookingRepository is a mock implementation of repository.BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockProducer is a mock implementation of Producer
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestBookingService_CreateBooking(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := NewBookingService(repo, producer, "booking-events")

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).ID = 3
		}).
		Return(nil)
	producer.On("Publish", mock.Anything, "booking-events", "user-1", mock.MatchedBy(func(v interface{}) bool {
		event, ok := v.(kafka.BookingEvent)
		return ok && event.Type == "booking_created" && event.BookingID == 3 && event.UserID == 1 && event.FlightID == 2
	})).Return(nil)

	booking, err := service.CreateBooking(context.Background(), CreateBookingInput{UserID: 1, FlightID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), booking.ID)

	repo.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_CreateBooking_InvalidInput(t *testing.T) {
	service := NewBookingService(&MockBookingRepository{}, nil, "")

	_, err := service.CreateBooking(context.Background(), CreateBookingInput{UserID: 0, FlightID: 2})
	assert.Error(t, err)

	_, err = service.CreateBooking(context.Background(), CreateBookingInput{UserID: 1, FlightID: 0})
	assert.Error(t, err)
}

func TestBookingService_CreateBooking_RepoError(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo, nil, "")

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(errors.New("insert failed"))

	_, err := service.CreateBooking(context.Background(), CreateBookingInput{UserID: 1, FlightID: 2})
	assert.Error(t, err)
}

func TestBookingService_CreateBooking_PublishFailureIgnored(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := NewBookingService(repo, producer, "booking-events")

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).ID = 3
		}).
		Return(nil)
	producer.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("kafka down"))

	booking, err := service.CreateBooking(context.Background(), CreateBookingInput{UserID: 1, FlightID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), booking.ID)
}

func TestBookingService_BookThenListForUser(t *testing.T) {
	repo := &MockBookingRepository{}
	service := NewBookingService(repo, nil, "")

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).ID = 1
		}).
		Return(nil)

	created, err := service.CreateBooking(context.Background(), CreateBookingInput{UserID: 1, FlightID: 2})
	require.NoError(t, err)

	repo.On("ListByUser", mock.Anything, int64(1)).Return([]domain.Booking{*created}, nil)

	bookings, err := service.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(2), bookings[0].FlightID)
}

func TestBookingService_CreateBooking_NotificationsMirrored(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	service := NewBookingService(repo, producer, "booking-events",
		WithNotificationsTopic("booking-notifications"))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Booking).ID = 3
		}).
		Return(nil)
	producer.On("Publish", mock.Anything, "booking-events", "user-1", mock.Anything).Return(nil)
	producer.On("Publish", mock.Anything, "booking-notifications", "user-1", mock.Anything).Return(nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingInput{UserID: 1, FlightID: 2})
	require.NoError(t, err)

	producer.AssertExpectations(t)
}
