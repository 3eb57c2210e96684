package services

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/dto"
)

// UserSvcFacade defines the operations for managing users.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Login verifies credentials and returns the authenticated user.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
}
