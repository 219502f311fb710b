package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nailbar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll   *mongo.Collection
	client *mongo.Client
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo(db *mongo.Database) AppointmentRepository {
	return &MongoAppointmentRepo{
		coll:   db.Collection("appointments"),
		client: db.Client(),
	}
}

// FindByID retrieves an appointment by its ID.
func (repo *MongoAppointmentRepo) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// UpdateFields applies a partial update to an appointment document.
func (repo *MongoAppointmentRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an appointment record.
func (repo *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
