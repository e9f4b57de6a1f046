package bookingRepo

import (
	"context"

	"github.com/teusdrz/firemoto/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking models.Booking) error
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
