package commitmentRepo

import (
	"context"
	"fmt"
	"time"

	"campusbook/config"
	"campusbook/database"
	"campusbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCommitmentRepo reads the commitment store's bookings and events
// collections.
type MongoCommitmentRepo struct {
	bookingColl *mongo.Collection
	eventColl   *mongo.Collection
}

func NewMongoCommitmentRepo() CommitmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoCommitmentRepo{
		bookingColl: db.Collection("bookings"),
		eventColl:   db.Collection("events"),
	}
}

func (r *MongoCommitmentRepo) FetchBookings(ctx context.Context, date string, scope models.ResourceScope) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date_scheduled": date}
	if !scope.All {
		filter["id_workspace"] = bson.M{"$in": scope.WorkspaceIDs}
	}

	cursor, err := r.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for %s: %w", date, err)
	}
	return bookings, nil
}

func (r *MongoCommitmentRepo) FetchEvents(ctx context.Context, date string, scope models.ResourceScope) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Timestamps are RFC 3339 strings, so lexicographic order is
	// chronological order: an event overlaps the day iff it starts before
	// the day ends and ends after it begins.
	filter := bson.M{
		"start_datetime": bson.M{"$lt": date + "T23:59:59"},
		"end_datetime":   bson.M{"$gt": date + "T00:00:00"},
	}
	if !scope.All {
		filter["id_workspace"] = bson.M{"$in": scope.WorkspaceIDs}
	}

	cursor, err := r.eventColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events for %s: %w", date, err)
	}
	return events, nil
}
