package notification

import (
	"context"
	"fmt"

	"github.com/teusdrz/firemoto/models"
	"github.com/teusdrz/firemoto/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendNotificationService sends booking notifications through the
// Resend email API.
type ResendNotificationService struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendNotificationService builds the Resend-backed notifier. An
// empty API key yields a disabled notifier whose sends are no-ops.
func NewResendNotificationService(apiKey, from, to string) *ResendNotificationService {
	svc := &ResendNotificationService{from: from, to: to}
	if apiKey != "" {
		svc.client = resend.NewClient(apiKey)
	}
	return svc
}

// Configured reports whether the notifier can actually send email.
func (s *ResendNotificationService) Configured() bool {
	return s.client != nil && s.to != ""
}

// SendBookingNotification emails the booking details to the shop's
// notification address.
func (s *ResendNotificationService) SendBookingNotification(ctx context.Context, booking models.Booking) error {
	if !s.Configured() {
		utils.GetLogger().Debug("email notifications disabled, skipping",
			zap.String("bookingId", booking.ID))
		return nil
	}

	html, err := renderBookingEmail(booking)
	if err != nil {
		return fmt.Errorf("failed to render booking notification: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: fmt.Sprintf("Novo Agendamento - %s - %s", booking.Name, booking.ServiceType),
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send booking notification email: %w", err)
	}

	utils.GetLogger().Sugar().Infof("Email notification sent for booking %s", booking.ID)
	return nil
}
