package contactRepo

import (
	"context"

	"github.com/teusdrz/firemoto/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ContactRepository interface {
	Insert(ctx context.Context, contact models.Contact) error
	ListAll(ctx context.Context) ([]models.Contact, error)
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo returns a new ContactRepository instance using MongoDB.
func NewMongoContactRepo(db *mongo.Database) ContactRepository {
	return &mongoContactRepo{
		coll: db.Collection("contacts"),
	}
}
