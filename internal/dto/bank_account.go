package dto

import (
	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to register a bank account.
type CreateBankAccountRequest struct {
	BankName      string          `json:"bankName" binding:"required"`
	AccountNumber string          `json:"accountNumber" binding:"required"`
	Holder        string          `json:"holder"`
	Balance       decimal.Decimal `json:"balance"`
}

// UpdateBankAccountRequest defines the data allowed for updating a bank account.
type UpdateBankAccountRequest struct {
	BankName      *string          `json:"bankName"`
	AccountNumber *string          `json:"accountNumber"`
	Holder        *string          `json:"holder"`
	Balance       *decimal.Decimal `json:"balance"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string          `json:"bankAccountID"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Holder        string          `json:"holder,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
}

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse DTO.
func ToBankAccountResponse(b *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: b.BankAccountID,
		BankName:      b.BankName,
		AccountNumber: b.AccountNumber,
		Holder:        b.Holder,
		Balance:       b.Balance,
	}
}

// ListBankAccountsResponse wraps the list of bank accounts.
type ListBankAccountsResponse struct {
	BankAccounts []BankAccountResponse `json:"bankAccounts"`
}

// ToListBankAccountsResponse converts a slice of domain.BankAccount to ListBankAccountsResponse.
func ToListBankAccountsResponse(accounts []domain.BankAccount) ListBankAccountsResponse {
	responses := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToBankAccountResponse(&accounts[i])
	}
	return ListBankAccountsResponse{BankAccounts: responses}
}
