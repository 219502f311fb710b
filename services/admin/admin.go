package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	adminRepo "nailbar/database/repository/admin"
	"nailbar/models"
	"nailbar/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// adminTokenTTL bounds how long an admin session token stays valid.
const adminTokenTTL = 12 * time.Hour

// Login verifies the credentials and returns a signed admin token. A
// wrong email and a wrong password report the same error so that the
// endpoint does not leak which accounts exist.
func (s *DefaultAdminService) Login(ctx context.Context, email, password string) (string, *models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, utils.NewValidationError("email and password are required")
	}

	account, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return "", nil, utils.NewValidationError("invalid email or password")
		}
		return "", nil, utils.NewStorageError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, utils.NewValidationError("invalid email or password")
	}

	token, err := utils.GenerateToken(account.ID, account.Email, "admin", adminTokenTTL)
	if err != nil {
		return "", nil, utils.NewStorageError(err)
	}
	return token, account, nil
}

// Register creates a back-office account. Intended for seeding and the
// occasional new staff member, not self-service signup.
func (s *DefaultAdminService) Register(ctx context.Context, email, name, password string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || name == "" {
		return nil, utils.NewValidationError("email and name are required")
	}
	if len(password) < 8 {
		return nil, utils.NewValidationError("password must be at least 8 characters")
	}

	if existing, err := s.Repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, utils.NewValidationError("an account with this email already exists")
	} else if err != nil && !errors.Is(err, adminRepo.ErrNotFound) {
		return nil, utils.NewStorageError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	account := &models.AdminUser{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, account); err != nil {
		return nil, utils.NewStorageError(err)
	}
	return account, nil
}
