package domain

import "github.com/shopspring/decimal"

// BankAccount is one of the company's bank accounts.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"` // Primary Key (UUID)
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Holder        string          `json:"holder,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
