package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/google/uuid"
)

// bankAccountService provides bank account operations.
type bankAccountService struct {
	bankAccountRepo portsrepo.BankAccountRepositoryFacade
}

// NewBankAccountService creates a new BankAccountService.
func NewBankAccountService(bankAccountRepo portsrepo.BankAccountRepositoryFacade) portssvc.BankAccountSvcFacade {
	return &bankAccountService{bankAccountRepo: bankAccountRepo}
}

var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, creatorUserID string) (*domain.BankAccount, error) {
	now := time.Now().UTC()

	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Holder:        req.Holder,
		Balance:       req.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bankAccountRepo.SaveBankAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}
	return &account, nil
}

func (s *bankAccountService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	return s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	return s.bankAccountRepo.ListBankAccounts(ctx)
}

func (s *bankAccountService) UpdateBankAccount(ctx context.Context, bankAccountID string, req dto.UpdateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	account, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}

	if req.BankName != nil {
		account.BankName = *req.BankName
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
	}
	if req.Holder != nil {
		account.Holder = *req.Holder
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = userID

	if err := s.bankAccountRepo.UpdateBankAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update bank account %s: %w", bankAccountID, err)
	}
	return account, nil
}

func (s *bankAccountService) DeleteBankAccount(ctx context.Context, bankAccountID string) error {
	return s.bankAccountRepo.DeleteBankAccount(ctx, bankAccountID)
}
