package catalogue

import (
	"context"
	"errors"
	"strings"
	"time"

	serviceRepo "nailbar/database/repository/service"
	"nailbar/models"
	"nailbar/utils"

	"github.com/google/uuid"
)

// CatalogueService manages the bookable service offerings.
type CatalogueService interface {
	// ListActive returns the public menu of bookable services.
	ListActive(ctx context.Context) ([]models.Service, error)
	// ListAll returns every service including deactivated ones.
	ListAll(ctx context.Context) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, req ServiceInput) (*models.Service, error)
	Update(ctx context.Context, id string, req ServiceInput) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}

// ServiceInput carries the writable fields of a catalogue entry.
type ServiceInput struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Category string  `json:"category"`
	Kind     string  `json:"kind"`
	Active   *bool   `json:"active"`
}

// DefaultCatalogueService is the production implementation.
type DefaultCatalogueService struct {
	Repo serviceRepo.ServiceRepository
}

func (s *DefaultCatalogueService) ListActive(ctx context.Context) ([]models.Service, error) {
	list, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	return list, nil
}

func (s *DefaultCatalogueService) ListAll(ctx context.Context) ([]models.Service, error) {
	list, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	return list, nil
}

func (s *DefaultCatalogueService) Get(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("service not found")
		}
		return nil, utils.NewStorageError(err)
	}
	return svc, nil
}

func (s *DefaultCatalogueService) Create(ctx context.Context, req ServiceInput) (*models.Service, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	svc := &models.Service{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Price:     req.Price,
		Duration:  req.Duration,
		Category:  strings.TrimSpace(req.Category),
		Kind:      normalizeKind(req.Kind),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	if err := s.Repo.Insert(ctx, svc); err != nil {
		return nil, utils.NewStorageError(err)
	}
	return svc, nil
}

func (s *DefaultCatalogueService) Update(ctx context.Context, id string, req ServiceInput) (*models.Service, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	svc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	svc.Name = strings.TrimSpace(req.Name)
	svc.Price = req.Price
	svc.Duration = req.Duration
	svc.Category = strings.TrimSpace(req.Category)
	svc.Kind = normalizeKind(req.Kind)
	if req.Active != nil {
		svc.Active = *req.Active
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, svc); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("service not found")
		}
		return nil, utils.NewStorageError(err)
	}
	return svc, nil
}

func (s *DefaultCatalogueService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return utils.NewNotFoundError("service not found")
		}
		return utils.NewStorageError(err)
	}
	return nil
}

func validateInput(req ServiceInput) error {
	if strings.TrimSpace(req.Name) == "" {
		return utils.NewValidationError("service name is required")
	}
	if req.Price < 0 {
		return utils.NewValidationError("price cannot be negative")
	}
	kind := normalizeKind(req.Kind)
	if kind != models.ServiceKindMain && kind != models.ServiceKindExtra {
		return utils.NewValidationError("kind must be %q or %q", models.ServiceKindMain, models.ServiceKindExtra)
	}
	if kind == models.ServiceKindMain && req.Duration <= 0 {
		return utils.NewValidationError("main services need a positive duration")
	}
	if req.Duration < 0 {
		return utils.NewValidationError("duration cannot be negative")
	}
	return nil
}

func normalizeKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return models.ServiceKindMain
	}
	return kind
}
