package services

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/dto"
)

// DischargeSvcFacade defines the operations for managing discharge receipts.
type DischargeSvcFacade interface {
	// CreateDischarge creates a discharge with a freshly assigned number.
	CreateDischarge(ctx context.Context, req dto.CreateDischargeRequest, creatorUserID string) (*domain.Discharge, error)
	GetDischargeByID(ctx context.Context, dischargeID string) (*domain.Discharge, error)
	ListDischarges(ctx context.Context, limit int, offset int) ([]domain.Discharge, error)
	UpdateDischarge(ctx context.Context, dischargeID string, req dto.UpdateDischargeRequest, userID string) (*domain.Discharge, error)
	DeleteDischarge(ctx context.Context, dischargeID string) error

	// SignDischarge records the provider's signature and marks the discharge
	// signed. A discharge can only be signed once.
	SignDischarge(ctx context.Context, dischargeID string, req dto.SignDischargeRequest, userID string) (*domain.Discharge, error)
}
