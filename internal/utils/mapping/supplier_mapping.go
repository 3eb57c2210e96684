package mapping

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier.
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:     d.SupplierID,
		Type:           models.SupplierType(d.Type),
		RaisonSociale:  d.RaisonSociale,
		NIF:            d.NIF,
		RCCM:           d.RCCM,
		Classification: d.Classification,
		RegimeFiscal:   d.RegimeFiscal,
		Address:        d.Address,
		Phone:          d.Phone,
		Email:          d.Email,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier.
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:     m.SupplierID,
		Type:           domain.SupplierType(m.Type),
		RaisonSociale:  m.RaisonSociale,
		NIF:            m.NIF,
		RCCM:           m.RCCM,
		Classification: m.Classification,
		RegimeFiscal:   m.RegimeFiscal,
		Address:        m.Address,
		Phone:          m.Phone,
		Email:          m.Email,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSupplierInvoice converts a domain SupplierInvoice to its model.
func ToModelSupplierInvoice(d domain.SupplierInvoice) models.SupplierInvoice {
	return models.SupplierInvoice{
		SupplierInvoiceID: d.SupplierInvoiceID,
		SupplierID:        d.SupplierID,
		InvoiceNumber:     d.InvoiceNumber,
		SupplierName:      d.SupplierName,
		NIF:               d.NIF,
		Date:              d.Date,
		HT:                d.HT,
		TVA:               d.TVA,
		TTC:               d.TTC,
		Status:            models.SupplierInvoiceStatus(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplierInvoice converts a model SupplierInvoice to its domain type.
func ToDomainSupplierInvoice(m models.SupplierInvoice) domain.SupplierInvoice {
	return domain.SupplierInvoice{
		SupplierInvoiceID: m.SupplierInvoiceID,
		SupplierID:        m.SupplierID,
		InvoiceNumber:     m.InvoiceNumber,
		SupplierName:      m.SupplierName,
		NIF:               m.NIF,
		Date:              m.Date,
		HT:                m.HT,
		TVA:               m.TVA,
		TTC:               m.TTC,
		Status:            domain.SupplierInvoiceStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
