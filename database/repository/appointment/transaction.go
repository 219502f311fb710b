package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"nailbar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// overlapFilter matches non-cancelled appointments on date whose half-open
// [start, end) window intersects the given one.
func overlapFilter(date string, start, end int) bson.M {
	return bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.StatusCancelled},
		"start":  bson.M{"$lt": end},
		"end":    bson.M{"$gt": start},
	}
}

// InsertIfSlotFree re-checks the conflict rule and inserts the appointment
// inside a single transaction. The availability grid shown to the customer
// is advisory; this is the authoritative check that closes the
// check-then-insert race between concurrent bookings.
func (repo *MongoAppointmentRepo) InsertIfSlotFree(ctx context.Context, appt *models.Appointment) error {
	sess, err := repo.client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		n, err := repo.coll.CountDocuments(sc, overlapFilter(appt.Date, appt.Start, appt.End))
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if _, err := repo.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	return repo.runTransaction(ctx, sess, txnFn)
}

// CancelAndReplace cancels the original appointment and inserts its
// replacement in one transaction. The replacement's window is checked
// against every non-cancelled appointment except the original itself.
func (repo *MongoAppointmentRepo) CancelAndReplace(ctx context.Context, originalID, reason string, replacement *models.Appointment) error {
	sess, err := repo.client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := overlapFilter(replacement.Date, replacement.Start, replacement.End)
		filter["id"] = bson.M{"$ne": originalID}
		n, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}

		update := bson.M{"$set": bson.M{
			"status":             models.StatusCancelled,
			"paymentStatus":      models.PaymentCancelled,
			"cancellationReason": reason,
			"updatedAt":          time.Now(),
		}}
		res, err := repo.coll.UpdateOne(sc, bson.M{"id": originalID}, update)
		if err != nil {
			return fmt.Errorf("cancel original failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}

		if _, err := repo.coll.InsertOne(sc, replacement); err != nil {
			return fmt.Errorf("insert replacement failed: %w", err)
		}
		return nil
	}

	return repo.runTransaction(ctx, sess, txnFn)
}

func (repo *MongoAppointmentRepo) runTransaction(ctx context.Context, sess mongo.Session, txnFn func(mongo.SessionContext) error) error {
	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
