package contact

import (
	"context"
	"fmt"
	"time"

	contactRepo "github.com/teusdrz/firemoto/database/repository/contact"
	"github.com/teusdrz/firemoto/models"

	"github.com/google/uuid"
)

const storageTimeout = 10 * time.Second

// DefaultContactService is the production implementation.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

// CreateContact builds a contact record from validated input and
// persists it.
func (s *DefaultContactService) CreateContact(ctx context.Context, in models.ContactInput) (*models.Contact, error) {
	contact := models.Contact{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: models.Now(),
	}
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	if err := s.Repo.Insert(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to store contact: %w", err)
	}
	return &contact, nil
}

// ListContacts returns the stored contact inquiries.
func (s *DefaultContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()
	return s.Repo.ListAll(ctx)
}
