package notification

import (
	"context"

	"github.com/teusdrz/firemoto/models"
)

// NotificationService delivers operational notifications to the shop.
type NotificationService interface {
	// SendBookingNotification emails the shop about a newly created
	// booking. When the provider is not configured it is a silent no-op.
	SendBookingNotification(ctx context.Context, booking models.Booking) error
}
