package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies the kind of customer document.
// The type is fixed at creation and never mutated afterwards.
type DocumentType string

const (
	Proforma DocumentType = "proforma" // quote / proforma invoice
	Order    DocumentType = "order"    // purchase order derived from an accepted quote
	Delivery DocumentType = "delivery" // delivery note (BL)
	Invoice  DocumentType = "invoice"  // final billing document
	Contract DocumentType = "contract"
)

// DocumentStatus is the financial state of a document. It is derived from
// payments and is independent of the workflow position.
type DocumentStatus string

const (
	StatusPending   DocumentStatus = "pending"
	StatusValidated DocumentStatus = "validated"
	StatusPartial   DocumentStatus = "partial"
	StatusPaid      DocumentStatus = "paid"
	StatusOverdue   DocumentStatus = "overdue"
)

// WorkflowStatus is the position of a document in the quote -> order ->
// delivery -> invoice lifecycle.
type WorkflowStatus string

const (
	WorkflowDraft     WorkflowStatus = "draft"
	WorkflowValidated WorkflowStatus = "validated"
	WorkflowOrdered   WorkflowStatus = "ordered"
	WorkflowDelivered WorkflowStatus = "delivered"
	WorkflowInvoiced  WorkflowStatus = "invoiced"
	WorkflowCompleted WorkflowStatus = "completed"
)

// LineItem is a single priced line of a document.
// ReceivedQuantity is only meaningful on delivery notes, where the quantity
// actually received may differ from the quantity ordered.
type LineItem struct {
	Description      string           `json:"description"`
	Quantity         decimal.Decimal  `json:"quantity"`
	UnitPrice        decimal.Decimal  `json:"unitPrice"`
	ReceivedQuantity *decimal.Decimal `json:"receivedQuantity,omitempty"`
}

// Payment is a single entry of a document's payment ledger. Entries are
// append-only; overpayment adjustments append a synthetic "Reliquat" entry
// instead of deleting history.
type Payment struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// PaymentScheduleEntry is a planned installment agreed in contract terms.
type PaymentScheduleEntry struct {
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ContractTerms carries the contractual conditions attached to an order.
type ContractTerms struct {
	DeliveryDate      *time.Time             `json:"deliveryDate,omitempty"`
	WarrantyPeriod    string                 `json:"warrantyPeriod,omitempty"`
	SpecialConditions string                 `json:"specialConditions,omitempty"`
	PaymentSchedule   []PaymentScheduleEntry `json:"paymentSchedule,omitempty"`
}

// Document is a customer document (quote, order, delivery note, invoice or
// contract). DocumentID is the human-readable formatted number
// (e.g. "N°F2500007"); it is assigned once and never changes.
type Document struct {
	DocumentID             string          `json:"documentID"`
	Type                   DocumentType    `json:"type"`
	Reference              string          `json:"reference"` // raw "{year}-{seq}" string, unique per (type, year)
	Date                   time.Time       `json:"date"`      // fixes the year used for numbering
	DueDate                *time.Time      `json:"dueDate,omitempty"`
	ClientName             string          `json:"clientName"`
	Address                string          `json:"address,omitempty"`
	City                   string          `json:"city,omitempty"`
	TVA                    decimal.Decimal `json:"tva"` // percent
	Items                  []LineItem      `json:"items"`
	Status                 DocumentStatus  `json:"status"`
	WorkflowStatus         WorkflowStatus  `json:"workflowStatus"`
	ParentDocumentID       *string         `json:"parentDocumentID,omitempty"`
	ChildDocuments         []string        `json:"childDocuments,omitempty"`
	Payments               []Payment       `json:"payments"`
	PaymentTermsDays       *int            `json:"paymentTermsDays,omitempty"` // e.g. 15, 30, 0 (comptant)
	OrderNumber            string          `json:"orderNumber,omitempty"`
	ContractTerms          *ContractTerms  `json:"contractTerms,omitempty"`
	ContractOrderReference string          `json:"contractOrderReference,omitempty"` // LETTRE DE COMMANDE N° / CONTRAT N°
	AuditFields
}

// TotalHT returns the tax-exclusive total: sum of quantity * unit price.
func (d Document) TotalHT() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.Items {
		total = total.Add(item.Quantity.Mul(item.UnitPrice))
	}
	return total
}

// TVAAmount returns the tax amount, rounded half away from zero to the unit
// (amounts are in non-decimal currency units).
func (d Document) TVAAmount() decimal.Decimal {
	return d.TotalHT().Mul(d.TVA).Div(decimal.NewFromInt(100)).Round(0)
}

// TotalTTC returns the tax-inclusive payable total.
func (d Document) TotalTTC() decimal.Decimal {
	return d.TotalHT().Add(d.TVAAmount())
}

// TotalPaid returns the sum of all recorded payments.
func (d Document) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// IsOverdue reports whether the document is past its due date without being
// fully settled.
func (d Document) IsOverdue(now time.Time) bool {
	if d.DueDate == nil || d.Status == StatusPaid {
		return false
	}
	return now.After(*d.DueDate)
}
