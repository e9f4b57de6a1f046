package contactRepo

import (
	"context"
	"fmt"

	"github.com/teusdrz/firemoto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listLimit = 1000

// Insert appends a new contact document to the collection.
func (r *mongoContactRepo) Insert(ctx context.Context, contact models.Contact) error {
	if _, err := r.coll.InsertOne(ctx, contact); err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// ListAll fetches up to listLimit contacts in natural order, with the
// Mongo _id field projected out.
func (r *mongoContactRepo) ListAll(ctx context.Context) ([]models.Contact, error) {
	opts := options.Find().SetLimit(listLimit).SetProjection(bson.M{"_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
