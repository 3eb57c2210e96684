package models

import "github.com/shopspring/decimal"

// BankAccount is the row model for the bank_accounts table.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Holder        string          `json:"holder,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
