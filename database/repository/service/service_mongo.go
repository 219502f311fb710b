package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &MongoServiceRepo{coll: db.Collection("services")}
}

func (repo *MongoServiceRepo) FindByID(ctx context.Context, id string) (*models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&svc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching service %s: %w", id, err)
	}
	return &svc, nil
}

func (repo *MongoServiceRepo) FindByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var services []models.Service
	if err := cursor.All(ctxWithTimeout, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (repo *MongoServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	return repo.list(ctx, bson.M{"active": true})
}

func (repo *MongoServiceRepo) ListAll(ctx context.Context) ([]models.Service, error) {
	return repo.list(ctx, bson.M{})
}

func (repo *MongoServiceRepo) list(ctx context.Context, filter bson.M) ([]models.Service, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var services []models.Service
	if err := cursor.All(ctxWithTimeout, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (repo *MongoServiceRepo) Insert(ctx context.Context, svc *models.Service) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, svc); err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}

func (repo *MongoServiceRepo) Update(ctx context.Context, svc *models.Service) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	res, err := repo.coll.ReplaceOne(ctxWithTimeout, bson.M{"id": svc.ID}, svc)
	if err != nil {
		return fmt.Errorf("error updating service %s: %w", svc.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoServiceRepo) Delete(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
