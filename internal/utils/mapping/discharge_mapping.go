package mapping

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/models"
)

// ToModelDischarge converts a domain Discharge to a model Discharge.
func ToModelDischarge(d domain.Discharge) models.Discharge {
	return models.Discharge{
		DischargeID:    d.DischargeID,
		Prestataire:    d.Prestataire,
		Service:        d.Service,
		Montant:        d.Montant,
		DatePrestation: d.DatePrestation,
		Lieu:           d.Lieu,
		Telephone:      d.Telephone,
		CNI:            d.CNI,
		Status:         models.DischargeStatus(d.Status),
		Signature:      d.Signature,
		SignedBy:       d.SignedBy,
		SignedAt:       d.SignedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDischarge converts a model Discharge to a domain Discharge.
func ToDomainDischarge(m models.Discharge) domain.Discharge {
	return domain.Discharge{
		DischargeID:    m.DischargeID,
		Prestataire:    m.Prestataire,
		Service:        m.Service,
		Montant:        m.Montant,
		DatePrestation: m.DatePrestation,
		Lieu:           m.Lieu,
		Telephone:      m.Telephone,
		CNI:            m.CNI,
		Status:         domain.DischargeStatus(m.Status),
		Signature:      m.Signature,
		SignedBy:       m.SignedBy,
		SignedAt:       m.SignedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
