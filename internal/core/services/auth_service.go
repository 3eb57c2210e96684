package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/ediba/backoffice_app/internal/middleware"
	"github.com/ediba/backoffice_app/internal/utils"
)

// ErrInvalidCredentials is returned when the email/password pair does not match.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authService verifies user credentials.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns the matching user.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Login failed", slog.String("email", email))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
