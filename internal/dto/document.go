package dto

import (
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemRequest is a single document line in a create/update request.
type LineItemRequest struct {
	Description      string           `json:"description" binding:"required"`
	Quantity         decimal.Decimal  `json:"quantity" binding:"required,gt=0"`
	UnitPrice        decimal.Decimal  `json:"unitPrice" binding:"required"`
	ReceivedQuantity *decimal.Decimal `json:"receivedQuantity"`
}

// ContractTermsRequest carries contract conditions on order creation.
type ContractTermsRequest struct {
	DeliveryDate      *time.Time                    `json:"deliveryDate"`
	WarrantyPeriod    string                        `json:"warrantyPeriod"`
	SpecialConditions string                        `json:"specialConditions"`
	PaymentSchedule   []PaymentScheduleEntryRequest `json:"paymentSchedule"`
}

// PaymentScheduleEntryRequest is a planned installment in contract terms.
type PaymentScheduleEntryRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// CreateDocumentRequest defines the data needed to create a document.
// The document number and reference are assigned by the service.
type CreateDocumentRequest struct {
	Type                   domain.DocumentType `json:"type" binding:"required,oneof=proforma order delivery invoice contract"`
	Date                   time.Time           `json:"date" binding:"required"`
	DueDate                *time.Time          `json:"dueDate"`
	ClientName             string              `json:"clientName" binding:"required"`
	Address                string              `json:"address"`
	City                   string              `json:"city"`
	TVA                    decimal.Decimal     `json:"tva"`
	Items                  []LineItemRequest   `json:"items" binding:"required,min=1,dive"`
	PaymentTermsDays       *int                `json:"paymentTermsDays"`
	ContractOrderReference string              `json:"contractOrderReference"`
}

// UpdateDocumentRequest defines the mutable fields of a document.
// Pointers differentiate omitted fields from zero values. Type, number and
// reference are immutable and deliberately absent.
type UpdateDocumentRequest struct {
	Date                   *time.Time         `json:"date"`
	DueDate                *time.Time         `json:"dueDate"`
	ClientName             *string            `json:"clientName"`
	Address                *string            `json:"address"`
	City                   *string            `json:"city"`
	TVA                    *decimal.Decimal   `json:"tva"`
	Items                  *[]LineItemRequest `json:"items"`
	PaymentTermsDays       *int               `json:"paymentTermsDays"`
	ContractOrderReference *string            `json:"contractOrderReference"`
}

// AddPaymentRequest records a payment against a document.
type AddPaymentRequest struct {
	Date   time.Time       `json:"date" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Note   string          `json:"note"`
}

// CreateOrderRequest carries the order-specific data when converting an
// accepted quote into an order.
type CreateOrderRequest struct {
	OrderNumber   string                `json:"orderNumber" binding:"required"`
	ContractTerms *ContractTermsRequest `json:"contractTerms"`
}

// UpdateWorkflowStatusRequest is the administrative override of a document's
// workflow position; it bypasses transition validation.
type UpdateWorkflowStatusRequest struct {
	WorkflowStatus domain.WorkflowStatus `json:"workflowStatus" binding:"required,oneof=draft validated ordered delivered invoiced completed"`
}

// ListDocumentsParams defines query parameters for listing documents.
type ListDocumentsParams struct {
	Type *domain.DocumentType `form:"type" binding:"omitempty,oneof=proforma order delivery invoice contract"`
	Year *int                 `form:"year"`
}

// DocumentResponse defines the data returned for a document, including the
// derived totals.
type DocumentResponse struct {
	DocumentID             string                `json:"documentID"`
	Type                   domain.DocumentType   `json:"type"`
	Reference              string                `json:"reference"`
	Date                   time.Time             `json:"date"`
	DueDate                *time.Time            `json:"dueDate,omitempty"`
	ClientName             string                `json:"clientName"`
	Address                string                `json:"address,omitempty"`
	City                   string                `json:"city,omitempty"`
	TVA                    decimal.Decimal       `json:"tva"`
	Items                  []domain.LineItem     `json:"items"`
	Status                 domain.DocumentStatus `json:"status"`
	WorkflowStatus         domain.WorkflowStatus `json:"workflowStatus"`
	ParentDocumentID       *string               `json:"parentDocumentID,omitempty"`
	ChildDocuments         []string              `json:"childDocuments,omitempty"`
	Payments               []domain.Payment      `json:"payments"`
	PaymentTermsDays       *int                  `json:"paymentTermsDays,omitempty"`
	OrderNumber            string                `json:"orderNumber,omitempty"`
	ContractTerms          *domain.ContractTerms `json:"contractTerms,omitempty"`
	ContractOrderReference string                `json:"contractOrderReference,omitempty"`
	TotalHT                decimal.Decimal       `json:"totalHT"`
	TVAAmount              decimal.Decimal       `json:"tvaAmount"`
	TotalTTC               decimal.Decimal       `json:"totalTTC"`
	TotalPaid              decimal.Decimal       `json:"totalPaid"`
	CreatedAt              time.Time             `json:"createdAt"`
	CreatedBy              string                `json:"createdBy"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:             d.DocumentID,
		Type:                   d.Type,
		Reference:              d.Reference,
		Date:                   d.Date,
		DueDate:                d.DueDate,
		ClientName:             d.ClientName,
		Address:                d.Address,
		City:                   d.City,
		TVA:                    d.TVA,
		Items:                  d.Items,
		Status:                 d.Status,
		WorkflowStatus:         d.WorkflowStatus,
		ParentDocumentID:       d.ParentDocumentID,
		ChildDocuments:         d.ChildDocuments,
		Payments:               d.Payments,
		PaymentTermsDays:       d.PaymentTermsDays,
		OrderNumber:            d.OrderNumber,
		ContractTerms:          d.ContractTerms,
		ContractOrderReference: d.ContractOrderReference,
		TotalHT:                d.TotalHT(),
		TVAAmount:              d.TVAAmount(),
		TotalTTC:               d.TotalTTC(),
		TotalPaid:              d.TotalPaid(),
		CreatedAt:              d.CreatedAt,
		CreatedBy:              d.CreatedBy,
	}
}

// ListDocumentsResponse wraps the list of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// ToListDocumentsResponse converts a slice of domain.Document to ListDocumentsResponse.
func ToListDocumentsResponse(docs []domain.Document) ListDocumentsResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return ListDocumentsResponse{Documents: responses}
}
