package services

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	domain "intake/internal/domain/bookings"
)

//go:generate mockgen -destination=mocks/mock_bookings_repo.go -package=mocks intake/internal/application/services BookingsRepo
type BookingsRepo interface {
	CreateBooking(ctx context.Context, booking domain.Booking) (int64, error)
	ListRecentBookings(ctx context.Context, limit int) ([]domain.Booking, error)
}

//go:generate mockgen -destination=mocks/mock_event_bus.go -package=mocks intake/internal/application/services EventBus
type EventBus interface {
	Publish(ctx context.Context, event any) error
}

type CreateBookingCommand struct {
	Name    string
	Email   string
	Service *string
}

type BookingService struct {
	bookingsRepo BookingsRepo
	eventBus     EventBus
}

func NewBookingService(bookingsRepo BookingsRepo, eventBus EventBus) *BookingService {
	return &BookingService{
		bookingsRepo: bookingsRepo,
		eventBus:     eventBus,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, cmd CreateBookingCommand) (int64, error) {
	if cmd.Name == "" || cmd.Email == "" {
		return 0, domain.ErrNameAndEmailRequired
	}

	service := domain.DefaultService
	if cmd.Service != nil {
		service = *cmd.Service
	}

	booking := domain.Booking{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Service: service,
	}

	id, err := s.bookingsRepo.CreateBooking(ctx, booking)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	// the row is already stored, a lost notification must not fail the request
	err = s.eventBus.Publish(ctx, &domain.BookingCreated_v1{
		Header:    domain.NewEventHeader(),
		BookingID: id,
		Name:      booking.Name,
		Email:     booking.Email,
		Service:   booking.Service,
	})
	if err != nil {
		log.FromContext(ctx).
			WithField("booking_id", id).
			WithField("error", err).
			Warn("Failed to publish BookingCreated event")
	}

	return id, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookingsRepo.ListRecentBookings(ctx, domain.DefaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}
