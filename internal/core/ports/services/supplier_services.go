package services

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/dto"
)

// SupplierSvcFacade defines the operations for managing suppliers and their
// inbound invoices.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error

	RecordSupplierInvoice(ctx context.Context, supplierID string, req dto.CreateSupplierInvoiceRequest, userID string) (*domain.SupplierInvoice, error)
	ListSupplierInvoices(ctx context.Context, supplierID string) ([]domain.SupplierInvoice, error)
}
