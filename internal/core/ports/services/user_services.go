package services

import (
	"context"

	"github.com/fintrack-app/fintrack_backend/internal/core/domain"
	"github.com/fintrack-app/fintrack_backend/internal/dto"
)

// UserSvcFacade defines the identity-provider operations: registration,
// credential verification and lookups by id/email.
type UserSvcFacade interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies the email/password pair and returns the user.
	// Returns apperrors.ErrForbidden when the credentials do not match.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)

	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
