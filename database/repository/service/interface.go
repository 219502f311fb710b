package serviceRepo

import (
	"context"
	"errors"

	"nailbar/models"
)

// ErrNotFound is returned when no service matches the given id.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines data access for the service catalogue.
type ServiceRepository interface {
	FindByID(ctx context.Context, id string) (*models.Service, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Service, error)
	ListActive(ctx context.Context) ([]models.Service, error)
	ListAll(ctx context.Context) ([]models.Service, error)
	Insert(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id string) error
}
