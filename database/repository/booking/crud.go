package bookingRepo

import (
	"context"
	"fmt"

	"github.com/teusdrz/firemoto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const listLimit = 1000

// Insert appends a new booking document to the collection. Bookings are
// immutable once written; there is no update path.
func (r *mongoBookingRepo) Insert(ctx context.Context, booking models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// ListAll fetches up to listLimit bookings in natural order, with the
// Mongo _id field projected out.
func (r *mongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetLimit(listLimit).SetProjection(bson.M{"_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
