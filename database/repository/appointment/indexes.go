package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"nailbar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the booking engine relies on. The
// partial unique index on (date, start) is the storage-level backstop for
// the no-double-booking rule: only non-cancelled appointments take part.
func (repo *MongoAppointmentRepo) EnsureIndexes(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$ne": models.StatusCancelled},
				}),
		},
		{
			Keys: bson.D{{Key: "customerEmail", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "customerPhone", Value: 1}},
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctxWithTimeout, indexes); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
