package mapping

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/models"
)

// ToModelDocument converts a domain Document to a model Document.
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:             d.DocumentID,
		Type:                   models.DocumentType(d.Type),
		Reference:              d.Reference,
		Date:                   d.Date,
		DueDate:                d.DueDate,
		ClientName:             d.ClientName,
		Address:                d.Address,
		City:                   d.City,
		TVA:                    d.TVA,
		Items:                  toModelLineItems(d.Items),
		Status:                 models.DocumentStatus(d.Status),
		WorkflowStatus:         models.WorkflowStatus(d.WorkflowStatus),
		ParentDocumentID:       d.ParentDocumentID,
		ChildDocuments:         d.ChildDocuments,
		Payments:               toModelPayments(d.Payments),
		PaymentTermsDays:       d.PaymentTermsDays,
		OrderNumber:            d.OrderNumber,
		ContractTerms:          toModelContractTerms(d.ContractTerms),
		ContractOrderReference: d.ContractOrderReference,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document.
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:             m.DocumentID,
		Type:                   domain.DocumentType(m.Type),
		Reference:              m.Reference,
		Date:                   m.Date,
		DueDate:                m.DueDate,
		ClientName:             m.ClientName,
		Address:                m.Address,
		City:                   m.City,
		TVA:                    m.TVA,
		Items:                  toDomainLineItems(m.Items),
		Status:                 domain.DocumentStatus(m.Status),
		WorkflowStatus:         domain.WorkflowStatus(m.WorkflowStatus),
		ParentDocumentID:       m.ParentDocumentID,
		ChildDocuments:         m.ChildDocuments,
		Payments:               toDomainPayments(m.Payments),
		PaymentTermsDays:       m.PaymentTermsDays,
		OrderNumber:            m.OrderNumber,
		ContractTerms:          toDomainContractTerms(m.ContractTerms),
		ContractOrderReference: m.ContractOrderReference,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDocumentSlice converts a slice of model Documents to domain Documents.
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}

func toModelLineItems(items []domain.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	for i, it := range items {
		out[i] = models.LineItem{
			Description:      it.Description,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			ReceivedQuantity: it.ReceivedQuantity,
		}
	}
	return out
}

func toDomainLineItems(items []models.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, it := range items {
		out[i] = domain.LineItem{
			Description:      it.Description,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			ReceivedQuantity: it.ReceivedQuantity,
		}
	}
	return out
}

func toModelPayments(payments []domain.Payment) []models.Payment {
	out := make([]models.Payment, len(payments))
	for i, p := range payments {
		out[i] = models.Payment{Date: p.Date, Amount: p.Amount, Note: p.Note}
	}
	return out
}

func toDomainPayments(payments []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(payments))
	for i, p := range payments {
		out[i] = domain.Payment{Date: p.Date, Amount: p.Amount, Note: p.Note}
	}
	return out
}

func toModelContractTerms(ct *domain.ContractTerms) *models.ContractTerms {
	if ct == nil {
		return nil
	}
	schedule := make([]models.PaymentScheduleEntry, len(ct.PaymentSchedule))
	for i, e := range ct.PaymentSchedule {
		schedule[i] = models.PaymentScheduleEntry{Date: e.Date, Amount: e.Amount, Description: e.Description}
	}
	return &models.ContractTerms{
		DeliveryDate:      ct.DeliveryDate,
		WarrantyPeriod:    ct.WarrantyPeriod,
		SpecialConditions: ct.SpecialConditions,
		PaymentSchedule:   schedule,
	}
}

func toDomainContractTerms(ct *models.ContractTerms) *domain.ContractTerms {
	if ct == nil {
		return nil
	}
	schedule := make([]domain.PaymentScheduleEntry, len(ct.PaymentSchedule))
	for i, e := range ct.PaymentSchedule {
		schedule[i] = domain.PaymentScheduleEntry{Date: e.Date, Amount: e.Amount, Description: e.Description}
	}
	return &domain.ContractTerms{
		DeliveryDate:      ct.DeliveryDate,
		WarrantyPeriod:    ct.WarrantyPeriod,
		SpecialConditions: ct.SpecialConditions,
		PaymentSchedule:   schedule,
	}
}
