package repositories

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
)

// DischargeReader defines read operations for discharge receipts.
type DischargeReader interface {
	FindDischargeByID(ctx context.Context, dischargeID string) (*domain.Discharge, error)
	ListDischarges(ctx context.Context, limit int, offset int) ([]domain.Discharge, error)

	// ListDischargeIDs returns every discharge id, used for number allocation.
	ListDischargeIDs(ctx context.Context) ([]string, error)
}

// DischargeWriter defines write operations for discharge receipts.
type DischargeWriter interface {
	SaveDischarge(ctx context.Context, discharge domain.Discharge) error
	UpdateDischarge(ctx context.Context, discharge domain.Discharge) error
	DeleteDischarge(ctx context.Context, dischargeID string) error
}

// DischargeRepositoryFacade combines all discharge repository interfaces.
type DischargeRepositoryFacade interface {
	DischargeReader
	DischargeWriter
}
