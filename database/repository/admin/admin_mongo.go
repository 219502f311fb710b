package adminRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nailbar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no admin account matches the given email.
var ErrNotFound = errors.New("admin account not found")

// AdminRepository defines data access for back-office accounts.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Insert(ctx context.Context, admin *models.AdminUser) error
}

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo constructs a new instance of MongoAdminRepo.
func NewMongoAdminRepo(db *mongo.Database) AdminRepository {
	return &MongoAdminRepo{coll: db.Collection("admins")}
}

func (repo *MongoAdminRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin models.AdminUser
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching admin %s: %w", email, err)
	}
	return &admin, nil
}

func (repo *MongoAdminRepo) Insert(ctx context.Context, admin *models.AdminUser) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, admin); err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}
	return nil
}
