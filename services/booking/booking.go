package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "github.com/teusdrz/firemoto/database/repository/booking"
	"github.com/teusdrz/firemoto/models"
	"github.com/teusdrz/firemoto/services/notification"
	"github.com/teusdrz/firemoto/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// notifyTimeout bounds the detached notification send so a slow mail
// provider cannot hold resources forever.
const notifyTimeout = 15 * time.Second

// storageTimeout bounds storage calls so a slow store cannot hold a
// request open indefinitely.
const storageTimeout = 10 * time.Second

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
}

// CreateBooking builds a booking from validated input, persists it and
// fires the shop notification. The booking is successful once stored;
// notification outcome never changes the result.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	booking := models.Booking{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		VehicleBrand:  in.VehicleBrand,
		VehicleModel:  in.VehicleModel,
		VehicleYear:   in.VehicleYear,
		ServiceType:   in.ServiceType,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Message:       in.Message,
		Status:        models.BookingStatusPending,
		CreatedAt:     models.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := s.Repo.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	s.notifyAsync(booking)

	return &booking, nil
}

// ListBookings returns the stored bookings.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.Repo.ListAll(ctx)
}

// notifyAsync dispatches the booking notification off the request path.
// The send is not awaited and any failure is only logged.
func (s *DefaultBookingService) notifyAsync(booking models.Booking) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.Notifier.SendBookingNotification(ctx, booking); err != nil {
			utils.GetLogger().Error("Failed to send booking notification",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}()
}
