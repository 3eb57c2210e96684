package mapping

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		Holder:        d.Holder,
		Balance:       d.Balance,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		Holder:        m.Holder,
		Balance:       m.Balance,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
