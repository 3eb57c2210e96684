package domain

import "github.com/shopspring/decimal"

// SupplierType distinguishes corporate suppliers from individuals.
type SupplierType string

const (
	SupplierSociete     SupplierType = "Societe"
	SupplierParticulier SupplierType = "Particulier"
)

// Supplier is a vendor the company buys from.
type Supplier struct {
	SupplierID     string       `json:"supplierID"` // Primary Key (UUID)
	Type           SupplierType `json:"type"`
	RaisonSociale  string       `json:"raisonSociale"`
	NIF            string       `json:"nif"`
	RCCM           string       `json:"rccm,omitempty"`
	Classification string       `json:"classification,omitempty"` // National / International
	RegimeFiscal   string       `json:"regimeFiscal,omitempty"`
	Address        string       `json:"address,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Email          string       `json:"email,omitempty"`
	AuditFields
}

// SupplierInvoiceStatus is the settlement state of a supplier invoice.
type SupplierInvoiceStatus string

const (
	SupplierInvoicePaid    SupplierInvoiceStatus = "paid"
	SupplierInvoicePartial SupplierInvoiceStatus = "partial"
	SupplierInvoiceUnpaid  SupplierInvoiceStatus = "unpaid"
)

// SupplierInvoice is an inbound invoice received from a supplier.
// HT/TVA/TTC are recorded as stated on the paper invoice rather than derived.
type SupplierInvoice struct {
	SupplierInvoiceID string                `json:"supplierInvoiceID"` // Primary Key (UUID)
	SupplierID        string                `json:"supplierID"`
	InvoiceNumber     string                `json:"invoiceNumber,omitempty"`
	SupplierName      string                `json:"supplierName"`
	NIF               string                `json:"nif,omitempty"`
	Date              string                `json:"date"` // ISO yyyy-mm-dd as printed on the invoice
	HT                decimal.Decimal       `json:"ht"`
	TVA               decimal.Decimal       `json:"tva"`
	TTC               decimal.Decimal       `json:"ttc"`
	Status            SupplierInvoiceStatus `json:"status"`
	AuditFields
}
