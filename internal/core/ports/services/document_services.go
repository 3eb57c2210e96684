package services

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/dto"
)

// DocumentReaderSvc defines read operations for customer documents.
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a document by its formatted number.
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocuments retrieves documents matching the filter parameters.
	ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, error)

	// GetDocumentWorkflow returns the full workflow chain of a document:
	// its ancestors oldest-first, the document itself, then all descendants
	// in depth-first order. Dangling links stop traversal, never fail it.
	GetDocumentWorkflow(ctx context.Context, documentID string) ([]domain.Document, error)
}

// DocumentWriterSvc defines create/update/delete operations for documents.
type DocumentWriterSvc interface {
	// CreateDocument creates a document, assigning its number and reference
	// from the next free sequence of its (type, year).
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorUserID string) (*domain.Document, error)

	// UpdateDocument applies a partial update to a document's mutable fields.
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.Document, error)

	// DeleteDocument removes a document from the store.
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentWorkflowSvc defines the guarded lifecycle transitions plus the
// administrative override.
type DocumentWorkflowSvc interface {
	// ValidateQuote marks a proforma as validated in place.
	ValidateQuote(ctx context.Context, quoteID string, userID string) (*domain.Document, error)

	// CreateOrderFromQuote derives a new order document from a validated quote.
	CreateOrderFromQuote(ctx context.Context, quoteID string, req dto.CreateOrderRequest, userID string) (*domain.Document, error)

	// CreateDeliveryFromOrder derives a new delivery note from an order.
	CreateDeliveryFromOrder(ctx context.Context, orderID string, userID string) (*domain.Document, error)

	// CreateInvoiceFromDelivery derives a new invoice from a delivery note.
	CreateInvoiceFromDelivery(ctx context.Context, deliveryID string, userID string) (*domain.Document, error)

	// UpdateDocumentWorkflowStatus sets the workflow status directly without
	// transition validation. Administrative override for manual correction.
	UpdateDocumentWorkflowStatus(ctx context.Context, documentID string, status domain.WorkflowStatus, userID string) (*domain.Document, error)
}

// DocumentPaymentSvc defines payment recording against documents.
type DocumentPaymentSvc interface {
	// AddPayment appends a payment to the document ledger, splitting off a
	// "Reliquat" entry when the payment overshoots the payable total, and
	// re-derives the financial status.
	AddPayment(ctx context.Context, documentID string, req dto.AddPaymentRequest, userID string) (*domain.Document, error)
}

// DocumentSvcFacade combines all document-related service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
	DocumentWorkflowSvc
	DocumentPaymentSvc
}
