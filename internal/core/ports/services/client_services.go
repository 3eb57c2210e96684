package services

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/dto"
)

// ClientSvcFacade defines the operations for managing clients.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
}
