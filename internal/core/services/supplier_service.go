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

// supplierService provides supplier and supplier invoice operations.
type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	supplierType := req.Type
	if supplierType == "" {
		supplierType = domain.SupplierSociete
	}

	supplier := domain.Supplier{
		SupplierID:     uuid.NewString(),
		Type:           supplierType,
		RaisonSociale:  req.RaisonSociale,
		NIF:            req.NIF,
		RCCM:           req.RCCM,
		Classification: req.Classification,
		RegimeFiscal:   req.RegimeFiscal,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *supplierService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx, limit, offset)
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		supplier.Type = *req.Type
	}
	if req.RaisonSociale != nil {
		supplier.RaisonSociale = *req.RaisonSociale
	}
	if req.NIF != nil {
		supplier.NIF = *req.NIF
	}
	if req.RCCM != nil {
		supplier.RCCM = *req.RCCM
	}
	if req.Classification != nil {
		supplier.Classification = *req.Classification
	}
	if req.RegimeFiscal != nil {
		supplier.RegimeFiscal = *req.RegimeFiscal
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	supplier.LastUpdatedAt = time.Now().UTC()
	supplier.LastUpdatedBy = userID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier %s: %w", supplierID, err)
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	return s.supplierRepo.DeleteSupplier(ctx, supplierID)
}

// RecordSupplierInvoice attaches an inbound invoice to a supplier. Amounts
// are recorded as stated on the paper invoice, not derived.
func (s *supplierService) RecordSupplierInvoice(ctx context.Context, supplierID string, req dto.CreateSupplierInvoiceRequest, userID string) (*domain.SupplierInvoice, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := req.Status
	if status == "" {
		status = domain.SupplierInvoiceUnpaid
	}

	invoice := domain.SupplierInvoice{
		SupplierInvoiceID: uuid.NewString(),
		SupplierID:        supplier.SupplierID,
		InvoiceNumber:     req.InvoiceNumber,
		SupplierName:      supplier.RaisonSociale,
		NIF:               supplier.NIF,
		Date:              req.Date,
		HT:                req.HT,
		TVA:               req.TVA,
		TTC:               req.TTC,
		Status:            status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.supplierRepo.SaveSupplierInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to save supplier invoice: %w", err)
	}
	return &invoice, nil
}

func (s *supplierService) ListSupplierInvoices(ctx context.Context, supplierID string) ([]domain.SupplierInvoice, error) {
	return s.supplierRepo.ListSupplierInvoices(ctx, supplierID)
}
