package statusRepo

import (
	"context"

	"github.com/teusdrz/firemoto/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StatusCheckRepository interface {
	Insert(ctx context.Context, check models.StatusCheck) error
	ListAll(ctx context.Context) ([]models.StatusCheck, error)
}

type mongoStatusRepo struct {
	coll *mongo.Collection
}

// NewMongoStatusRepo returns a new StatusCheckRepository instance using MongoDB.
func NewMongoStatusRepo(db *mongo.Database) StatusCheckRepository {
	return &mongoStatusRepo{
		coll: db.Collection("status_checks"),
	}
}
