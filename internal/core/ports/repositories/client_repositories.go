package repositories

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
