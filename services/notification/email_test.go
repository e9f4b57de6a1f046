package notification

import (
	"context"
	"html"
	"strings"
	"testing"

	"github.com/teusdrz/firemoto/models"
)

func sampleBooking() models.Booking {
	return models.Booking{
		ID:            "b-1",
		Name:          "João",
		Phone:         "+551199999999",
		Email:         "joao@example.com",
		VehicleBrand:  "Honda",
		VehicleModel:  "CG 160",
		VehicleYear:   "2022",
		ServiceType:   "Troca de Óleo e Filtros",
		PreferredDate: "2025-01-10",
		PreferredTime: "14:00",
	}
}

func TestRenderBookingEmailIncludesDetails(t *testing.T) {
	booking := sampleBooking()
	booking.Message = "Moto faz barulho ao frear"

	rendered, err := renderBookingEmail(booking)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	// The template escapes field values (e.g. "+" becomes "&#43;"),
	// so compare against the unescaped body.
	unescaped := html.UnescapeString(rendered)
	for _, want := range []string{
		booking.Name, booking.Phone, booking.Email,
		booking.VehicleBrand, booking.VehicleModel, booking.VehicleYear,
		booking.ServiceType, booking.PreferredDate, booking.PreferredTime,
		booking.Message,
	} {
		if !strings.Contains(unescaped, want) {
			t.Fatalf("rendered email missing %q", want)
		}
	}
}

func TestRenderBookingEmailEscapesFieldValues(t *testing.T) {
	booking := sampleBooking()
	booking.Message = `<script>alert("x")</script>`

	rendered, err := renderBookingEmail(booking)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(rendered, "<script>") {
		t.Fatalf("field values must be escaped in the rendered body")
	}
	if !strings.Contains(rendered, "&#43;551199999999") {
		t.Fatalf("expected escaped phone number in rendered body")
	}
}

func TestRenderBookingEmailOmitsEmptyMessage(t *testing.T) {
	rendered, err := renderBookingEmail(sampleBooking())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(rendered, "Observa") {
		t.Fatalf("message section should be absent when no message is given")
	}
}

func TestUnconfiguredNotifierIsNoOp(t *testing.T) {
	svc := NewResendNotificationService("", "shop@example.com", "owner@example.com")
	if svc.Configured() {
		t.Fatalf("notifier without an API key must report unconfigured")
	}
	if err := svc.SendBookingNotification(context.Background(), sampleBooking()); err != nil {
		t.Fatalf("unconfigured send must be a silent no-op, got %v", err)
	}
}

func TestNotifierWithoutRecipientIsNoOp(t *testing.T) {
	svc := NewResendNotificationService("re_123", "shop@example.com", "")
	if svc.Configured() {
		t.Fatalf("notifier without a recipient must report unconfigured")
	}
}
