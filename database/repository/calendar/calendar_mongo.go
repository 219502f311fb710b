package calendarRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nailbar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activeScheduleID keys the single active schedule document.
const activeScheduleID = "active"

// MongoCalendarRepo implements CalendarRepository using MongoDB.
type MongoCalendarRepo struct {
	scheduleColl *mongo.Collection
	closureColl  *mongo.Collection
}

// NewMongoCalendarRepo constructs a new instance of MongoCalendarRepo.
func NewMongoCalendarRepo(db *mongo.Database) CalendarRepository {
	return &MongoCalendarRepo{
		scheduleColl: db.Collection("schedules"),
		closureColl:  db.Collection("closures"),
	}
}

// GetActiveSchedule returns the active weekly schedule, nil if none exists.
func (repo *MongoCalendarRepo) GetActiveSchedule(ctx context.Context) (*models.WeeklySchedule, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	err := repo.scheduleColl.FindOne(ctxWithTimeout, bson.M{"id": activeScheduleID}).Decode(&schedule)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching active schedule: %w", err)
	}
	return &schedule, nil
}

// ReplaceSchedule upserts the single active schedule document wholesale.
func (repo *MongoCalendarRepo) ReplaceSchedule(ctx context.Context, schedule *models.WeeklySchedule) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	schedule.ID = activeScheduleID
	schedule.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.scheduleColl.ReplaceOne(ctxWithTimeout, bson.M{"id": activeScheduleID}, schedule, opts); err != nil {
		return fmt.Errorf("error replacing schedule: %w", err)
	}
	return nil
}

// ListClosures returns all recorded closure dates ordered by date.
func (repo *MongoCalendarRepo) ListClosures(ctx context.Context) ([]models.ClosureDate, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := repo.closureColl.Find(ctxWithTimeout, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching closures: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var closures []models.ClosureDate
	if err := cursor.All(ctxWithTimeout, &closures); err != nil {
		return nil, fmt.Errorf("error decoding closures: %w", err)
	}
	return closures, nil
}

// FindClosureByDate returns the closure recorded for a date, nil if none.
func (repo *MongoCalendarRepo) FindClosureByDate(ctx context.Context, date string) (*models.ClosureDate, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var closure models.ClosureDate
	err := repo.closureColl.FindOne(ctxWithTimeout, bson.M{"date": date}).Decode(&closure)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching closure for %s: %w", date, err)
	}
	return &closure, nil
}

// AddClosure inserts a closure date, rejecting duplicates.
func (repo *MongoCalendarRepo) AddClosure(ctx context.Context, closure *models.ClosureDate) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	existing, err := repo.FindClosureByDate(ctxWithTimeout, closure.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateClosure
	}
	if _, err := repo.closureColl.InsertOne(ctxWithTimeout, closure); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateClosure
		}
		return fmt.Errorf("error inserting closure: %w", err)
	}
	return nil
}

// RemoveClosure deletes a closure by id.
func (repo *MongoCalendarRepo) RemoveClosure(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.closureColl.DeleteOne(ctxWithTimeout, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting closure %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
