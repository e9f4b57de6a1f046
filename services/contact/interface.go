package contact

import (
	"context"

	"github.com/teusdrz/firemoto/models"
)

// ContactService records and lists contact-form inquiries.
type ContactService interface {
	CreateContact(ctx context.Context, in models.ContactInput) (*models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
}
