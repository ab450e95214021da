package calendarRepo

import (
	"context"
	"fmt"
	"time"

	"enersense/database"
	"enersense/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the
// "consultations" collection. Rows are insert-only, matching the CSV engine.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("enersense")
	return &mongoBookingRepo{
		coll: db.Collection("consultations"),
	}
}

func (r *mongoBookingRepo) Append(ctx context.Context, booking models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("insert booking row: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("find bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings for %s: %w", date, err)
	}
	return bookings, nil
}
