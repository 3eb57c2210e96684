package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/ediba/backoffice_app/internal/middleware"
	"github.com/google/uuid"
)

// clientService provides client management operations.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	client := domain.Client{
		ClientID:      uuid.NewString(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		NIF:           req.NIF,
		Address:       req.Address,
		City:          req.City,
		Phone:         req.Phone,
		Email:         req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *clientService) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx, limit, offset)
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.ContactPerson != nil {
		client.ContactPerson = *req.ContactPerson
	}
	if req.NIF != nil {
		client.NIF = *req.NIF
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	client.LastUpdatedAt = time.Now().UTC()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	return s.clientRepo.DeleteClient(ctx, clientID)
}
