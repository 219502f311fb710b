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

// FindActiveByDate retrieves all non-cancelled appointments on a date,
// ordered by start time.
func (repo *MongoAppointmentRepo) FindActiveByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments for %s: %w", date, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// FindByCustomer retrieves appointments whose stored email matches the
// lowercased input, or whose stored phone matches any of the given forms.
func (repo *MongoAppointmentRepo) FindByCustomer(ctx context.Context, email string, phoneForms []string) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var or []bson.M
	if email != "" {
		or = append(or, bson.M{"customerEmail": email})
	}
	if len(phoneForms) > 0 {
		or = append(or, bson.M{"customerPhone": bson.M{"$in": phoneForms}})
	}
	if len(or) == 0 {
		return nil, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"$or": or}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching customer appointments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding customer appointments: %w", err)
	}
	return appts, nil
}

// FindByRange lists appointments in an inclusive date range, optionally
// filtered by status.
func (repo *MongoAppointmentRepo) FindByRange(ctx context.Context, from, to, status string) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	dateRange := bson.M{}
	if from != "" {
		dateRange["$gte"] = from
	}
	if to != "" {
		dateRange["$lte"] = to
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appts []models.Appointment
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// MonthlyRevenue sums servicePrice of completed, paid appointments grouped
// by "YYYY-MM" for the given year.
func (repo *MongoAppointmentRepo) MonthlyRevenue(ctx context.Context, year int) ([]models.MonthRevenue, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prefix := fmt.Sprintf("%04d-", year)
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date":          bson.M{"$gte": prefix + "01-01", "$lte": prefix + "12-31"},
			"status":        models.StatusCompleted,
			"paymentStatus": models.PaymentPaid,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$substr": bson.A{"$date", 0, 7}},
			"total": bson.M{"$sum": "$servicePrice"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := repo.coll.Aggregate(ctxWithTimeout, pipeline)
	if err != nil {
		return nil, fmt.Errorf("revenue aggregation error: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var rows []models.MonthRevenue
	if err := cursor.All(ctxWithTimeout, &rows); err != nil {
		return nil, fmt.Errorf("error decoding revenue rows: %w", err)
	}
	return rows, nil
}
