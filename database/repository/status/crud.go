package statusRepo

import (
	"context"
	"fmt"

	"github.com/teusdrz/firemoto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listLimit caps how many records a single list call returns.
const listLimit = 1000

// Insert appends a new status check document to the collection.
func (r *mongoStatusRepo) Insert(ctx context.Context, check models.StatusCheck) error {
	if _, err := r.coll.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("failed to insert status check: %w", err)
	}
	return nil
}

// ListAll fetches up to listLimit status checks in natural order.
// The Mongo _id field is projected out so it never leaks into responses.
func (r *mongoStatusRepo) ListAll(ctx context.Context) ([]models.StatusCheck, error) {
	opts := options.Find().SetLimit(listLimit).SetProjection(bson.M{"_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list status checks: %w", err)
	}
	defer cursor.Close(ctx)

	var checks []models.StatusCheck
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}
	return checks, nil
}
