package bookingRepo

import (
	"context"
	"testing"

	"github.com/teusdrz/firemoto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestListAllCapsResultsAndHidesObjectID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find carries limit and projection", func(mt *mtest.T) {
		repo := &mongoBookingRepo{coll: mt.Coll}

		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "id", Value: "b-1"},
			{Key: "name", Value: "João"},
			{Key: "phone", Value: "+551199999999"},
			{Key: "email", Value: "joao@example.com"},
			{Key: "vehicle_brand", Value: "Honda"},
			{Key: "vehicle_model", Value: "CG 160"},
			{Key: "vehicle_year", Value: "2022"},
			{Key: "service_type", Value: "Troca de Óleo e Filtros"},
			{Key: "preferred_date", Value: "2025-01-10"},
			{Key: "preferred_time", Value: "14:00"},
			{Key: "status", Value: models.BookingStatusPending},
			{Key: "created_at", Value: "2025-01-05T09:30:00Z"},
		}))

		bookings, err := repo.ListAll(context.Background())
		if err != nil {
			mt.Fatalf("ListAll: %v", err)
		}
		if len(bookings) != 1 {
			mt.Fatalf("expected 1 booking, got %d", len(bookings))
		}
		if bookings[0].ID != "b-1" || bookings[0].Status != models.BookingStatusPending {
			mt.Fatalf("unexpected booking decoded: %+v", bookings[0])
		}
		if bookings[0].CreatedAt.Time().Year() != 2025 {
			mt.Fatalf("textual created_at not reconstructed: %v", bookings[0].CreatedAt.Time())
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			mt.Fatalf("expected a find command, got %+v", evt)
		}
		limit, ok := evt.Command.Lookup("limit").Int64OK()
		if !ok || limit != listLimit {
			mt.Fatalf("expected find limit %d, got %v", int64(listLimit), evt.Command.Lookup("limit"))
		}
		proj, ok := evt.Command.Lookup("projection", "_id").Int32OK()
		if !ok || proj != 0 {
			mt.Fatalf("expected _id projected out, got %v", evt.Command.Lookup("projection"))
		}
	})
}
