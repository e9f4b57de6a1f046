package booking

import (
	"context"

	"github.com/teusdrz/firemoto/models"
)

// BookingService records and lists service bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}
