package services

import (
	"context"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/ediba/backoffice_app/internal/dto"
)

// BankAccountSvcFacade defines the operations for managing bank accounts.
type BankAccountSvcFacade interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error)
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error)
	DeleteBankAccount(ctx context.Context, bankAccountID string) error
}
