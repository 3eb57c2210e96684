package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies the kind of customer document.
type DocumentType string

const (
	Proforma DocumentType = "proforma"
	Order    DocumentType = "order"
	Delivery DocumentType = "delivery"
	Invoice  DocumentType = "invoice"
	Contract DocumentType = "contract"
)

// DocumentStatus is the financial state of a document.
type DocumentStatus string

// WorkflowStatus is the lifecycle position of a document.
type WorkflowStatus string

// LineItem mirrors domain.LineItem; stored as JSONB inside the documents row.
type LineItem struct {
	Description      string           `json:"description"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unitPrice"`
	ReceivedQuantity *decimal.Decimal `json:"receivedQuantity,omitempty"`
}

// Payment mirrors domain.Payment; stored as JSONB inside the documents row.
type Payment struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// PaymentScheduleEntry mirrors domain.PaymentScheduleEntry.
type PaymentScheduleEntry struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ContractTerms mirrors domain.ContractTerms; stored as JSONB.
type ContractTerms struct {
	DeliveryDate      *time.Time             `json:"deliveryDate,omitempty"`
	WarrantyPeriod    string                 `json:"warrantyPeriod,omitempty"`
	SpecialConditions string                 `json:"specialConditions,omitempty"`
	PaymentSchedule   []PaymentScheduleEntry `json:"paymentSchedule,omitempty"`
}

// Document is the row model for the documents table. Items, Payments,
// ChildDocuments and ContractTerms live in JSONB columns.
type Document struct {
	DocumentID             string          `json:"documentID"`
	Type                   DocumentType    `json:"type"`
	Reference              string          `json:"reference"`
	Date                   time.Time       `json:"date"`
	DueDate                *time.Time      `json:"dueDate,omitempty"`
	ClientName             string          `json:"clientName"`
	Address                string          `json:"address,omitempty"`
	City                   string          `json:"city,omitempty"`
	TVA                    decimal.Decimal `json:"tva"`
	Items                  []LineItem      `json:"items"`
	Status                 DocumentStatus  `json:"status"`
	WorkflowStatus         WorkflowStatus  `json:"workflowStatus"`
	ParentDocumentID       *string         `json:"parentDocumentID,omitempty"`
	ChildDocuments         []string        `json:"childDocuments,omitempty"`
	Payments               []Payment       `json:"payments"`
	PaymentTermsDays       *int            `json:"paymentTermsDays,omitempty"`
	OrderNumber            string          `json:"orderNumber,omitempty"`
	ContractTerms          *ContractTerms  `json:"contractTerms,omitempty"`
	ContractOrderReference string          `json:"contractOrderReference,omitempty"`
	AuditFields
}
