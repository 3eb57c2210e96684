package services

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/dto"
)

// ContractOrderSvcFacade defines the operations for managing formal contract
// and purchase order documents.
type ContractOrderSvcFacade interface {
	// CreateContractOrder creates a contract order with a freshly assigned id.
	// Contracts and orders share one sequence.
	CreateContractOrder(ctx context.Context, req dto.CreateContractOrderRequest, creatorUserID string) (*domain.ContractOrder, error)
	GetContractOrderByID(ctx context.Context, contractOrderID string) (*domain.ContractOrder, error)
	ListContractOrders(ctx context.Context, limit int, offset int) ([]domain.ContractOrder, error)
	UpdateContractOrder(ctx context.Context, contractOrderID string, req dto.UpdateContractOrderRequest, userID string) (*domain.ContractOrder, error)
	DeleteContractOrder(ctx context.Context, contractOrderID string) error
}
