package admin

import (
	"context"

	adminRepo "nailbar/database/repository/admin"
	"nailbar/models"
)

// AdminService authenticates back-office users.
type AdminService interface {
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, *models.AdminUser, error)
	// Register creates a back-office account with a hashed password.
	Register(ctx context.Context, email, name, password string) (*models.AdminUser, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}
