package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractOrderType distinguishes formal contracts from purchase order letters.
type ContractOrderType string

const (
	ContractOrderContract ContractOrderType = "contract"
	ContractOrderOrder    ContractOrderType = "order"
)

// ContractOrder is the formal administrative document issued for a public
// contract or a purchase order letter: awardee, amounts, guarantees and the
// budget lines the engagement draws on.
type ContractOrder struct {
	ContractOrderID      string            `json:"contractOrderID"` // Primary Key, e.g. "CONTRACT-003"
	Type                 ContractOrderType `json:"type"`
	DocumentNumber       string            `json:"documentNumber"`
	Date                 time.Time         `json:"date"`
	AuthorizingReference string            `json:"authorizingReference,omitempty"`
	Awardee              string            `json:"awardee"`
	TaxID                string            `json:"taxID,omitempty"`
	Amount               decimal.Decimal   `json:"amount"`
	AmountInWords        string            `json:"amountInWords,omitempty"`
	WarrantyPeriod       int               `json:"warrantyPeriod,omitempty"`
	WarrantyRetention    decimal.Decimal   `json:"warrantyRetention,omitempty"` // percent withheld
	PerformanceGuarantee string            `json:"performanceGuarantee,omitempty"`
	BankAccount          string            `json:"bankAccount,omitempty"`
	BankName             string            `json:"bankName,omitempty"`
	BudgetAllocation     string            `json:"budgetAllocation,omitempty"`
	DepositAccount       string            `json:"depositAccount,omitempty"`
	DepositAccountTitle  string            `json:"depositAccountTitle,omitempty"`
	Subject              string            `json:"subject"`
	LotDescription       string            `json:"lotDescription,omitempty"`
	ExecutionPeriod      int               `json:"executionPeriod,omitempty"`
	IssuingAuthority     string            `json:"issuingAuthority,omitempty"`
	Country              string            `json:"country,omitempty"`
	Motto                string            `json:"motto,omitempty"`
	AuditFields
}
