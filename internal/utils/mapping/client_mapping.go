package mapping

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/models"
)

// ToModelClient converts a domain Client to a model Client.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:      d.ClientID,
		Name:          d.Name,
		ContactPerson: d.ContactPerson,
		NIF:           d.NIF,
		Address:       d.Address,
		City:          d.City,
		Phone:         d.Phone,
		Email:         d.Email,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:      m.ClientID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		NIF:           m.NIF,
		Address:       m.Address,
		City:          m.City,
		Phone:         m.Phone,
		Email:         m.Email,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
