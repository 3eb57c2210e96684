package models

import "github.com/shopspring/decimal"

// SupplierType distinguishes corporate suppliers from individuals.
type SupplierType string

// Supplier is the row model for the suppliers table.
type Supplier struct {
	SupplierID     string       `json:"supplierID"`
	Type           SupplierType `json:"type"`
	RaisonSociale  string       `json:"raisonSociale"`
	NIF            string       `json:"nif"`
	RCCM           string       `json:"rccm,omitempty"`
	Classification string       `json:"classification,omitempty"`
	RegimeFiscal   string       `json:"regimeFiscal,omitempty"`
	Address        string       `json:"address,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Email          string       `json:"email,omitempty"`
	AuditFields
}

// SupplierInvoiceStatus is the settlement state of a supplier invoice.
type SupplierInvoiceStatus string

// SupplierInvoice is the row model for the supplier_invoices table.
type SupplierInvoice struct {
	SupplierInvoiceID string                `json:"supplierInvoiceID"`
	SupplierID        string                `json:"supplierID"`
	InvoiceNumber     string                `json:"invoiceNumber,omitempty"`
	SupplierName      string                `json:"supplierName"`
	NIF               string                `json:"nif,omitempty"`
	Date              string                `json:"date"`
	HT                decimal.Decimal       `json:"ht"`
	TVA               decimal.Decimal       `json:"tva"`
	TTC               decimal.Decimal       `json:"ttc"`
	Status            SupplierInvoiceStatus `json:"status"`
	AuditFields
}
