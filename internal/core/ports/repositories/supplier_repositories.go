package repositories

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
)

// SupplierReader defines read operations for supplier data.
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data.
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierInvoiceReader defines read operations for supplier invoices.
type SupplierInvoiceReader interface {
	ListSupplierInvoices(ctx context.Context, supplierID string) ([]domain.SupplierInvoice, error)
}

// SupplierInvoiceWriter defines write operations for supplier invoices.
type SupplierInvoiceWriter interface {
	SaveSupplierInvoice(ctx context.Context, invoice domain.SupplierInvoice) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
	SupplierInvoiceReader
	SupplierInvoiceWriter
}
