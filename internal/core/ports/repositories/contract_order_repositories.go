package repositories

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
)

// ContractOrderReader defines read operations for contract/order documents.
type ContractOrderReader interface {
	FindContractOrderByID(ctx context.Context, contractOrderID string) (*domain.ContractOrder, error)
	ListContractOrders(ctx context.Context, limit int, offset int) ([]domain.ContractOrder, error)

	// ListContractOrderIDs returns every contract order id, used for number
	// allocation.
	ListContractOrderIDs(ctx context.Context) ([]string, error)
}

// ContractOrderWriter defines write operations for contract/order documents.
type ContractOrderWriter interface {
	SaveContractOrder(ctx context.Context, contractOrder domain.ContractOrder) error
	UpdateContractOrder(ctx context.Context, contractOrder domain.ContractOrder) error
	DeleteContractOrder(ctx context.Context, contractOrderID string) error
}

// ContractOrderRepositoryFacade combines all contract order repository interfaces.
type ContractOrderRepositoryFacade interface {
	ContractOrderReader
	ContractOrderWriter
}
