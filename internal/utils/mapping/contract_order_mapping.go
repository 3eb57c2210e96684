package mapping

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/models"
)

// ToModelContractOrder converts a domain ContractOrder to its model.
func ToModelContractOrder(d domain.ContractOrder) models.ContractOrder {
	return models.ContractOrder{
		ContractOrderID:      d.ContractOrderID,
		Type:                 models.ContractOrderType(d.Type),
		DocumentNumber:       d.DocumentNumber,
		Date:                 d.Date,
		AuthorizingReference: d.AuthorizingReference,
		Awardee:              d.Awardee,
		TaxID:                d.TaxID,
		Amount:               d.Amount,
		AmountInWords:        d.AmountInWords,
		WarrantyPeriod:       d.WarrantyPeriod,
		WarrantyRetention:    d.WarrantyRetention,
		PerformanceGuarantee: d.PerformanceGuarantee,
		BankAccount:          d.BankAccount,
		BankName:             d.BankName,
		BudgetAllocation:     d.BudgetAllocation,
		DepositAccount:       d.DepositAccount,
		DepositAccountTitle:  d.DepositAccountTitle,
		Subject:              d.Subject,
		LotDescription:       d.LotDescription,
		ExecutionPeriod:      d.ExecutionPeriod,
		IssuingAuthority:     d.IssuingAuthority,
		Country:              d.Country,
		Motto:                d.Motto,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContractOrder converts a model ContractOrder to its domain type.
func ToDomainContractOrder(m models.ContractOrder) domain.ContractOrder {
	return domain.ContractOrder{
		ContractOrderID:      m.ContractOrderID,
		Type:                 domain.ContractOrderType(m.Type),
		DocumentNumber:       m.DocumentNumber,
		Date:                 m.Date,
		AuthorizingReference: m.AuthorizingReference,
		Awardee:              m.Awardee,
		TaxID:                m.TaxID,
		Amount:               m.Amount,
		AmountInWords:        m.AmountInWords,
		WarrantyPeriod:       m.WarrantyPeriod,
		WarrantyRetention:    m.WarrantyRetention,
		PerformanceGuarantee: m.PerformanceGuarantee,
		BankAccount:          m.BankAccount,
		BankName:             m.BankName,
		BudgetAllocation:     m.BudgetAllocation,
		DepositAccount:       m.DepositAccount,
		DepositAccountTitle:  m.DepositAccountTitle,
		Subject:              m.Subject,
		LotDescription:       m.LotDescription,
		ExecutionPeriod:      m.ExecutionPeriod,
		IssuingAuthority:     m.IssuingAuthority,
		Country:              m.Country,
		Motto:                m.Motto,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
