package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/ediba/backoffice_app/internal/middleware"
)

// contractOrderService manages formal contract and purchase order documents.
type contractOrderService struct {
	contractOrderRepo portsrepo.ContractOrderRepositoryFacade

	// seqMu serializes id allocation. Contracts and orders draw from one
	// shared sequence, prefixed by type.
	seqMu sync.Mutex
}

// NewContractOrderService creates a new ContractOrderService.
func NewContractOrderService(contractOrderRepo portsrepo.ContractOrderRepositoryFacade) portssvc.ContractOrderSvcFacade {
	return &contractOrderService{contractOrderRepo: contractOrderRepo}
}

var _ portssvc.ContractOrderSvcFacade = (*contractOrderService)(nil)

// formatContractOrderID builds the id, e.g. "CONTRACT-003" or "ORDER-004".
func formatContractOrderID(coType domain.ContractOrderType, seq int) string {
	return fmt.Sprintf("%s-%03d", strings.ToUpper(string(coType)), seq)
}

// CreateContractOrder creates a contract order with a freshly assigned id
// from the shared contract/order sequence.
func (s *contractOrderService) CreateContractOrder(ctx context.Context, req dto.CreateContractOrderRequest, creatorUserID string) (*domain.ContractOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	ids, err := s.contractOrderRepo.ListContractOrderIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contract order ids for numbering: %w", err)
	}
	contractOrderID := formatContractOrderID(req.Type, nextTrailingSequence(ids))

	contractOrder := domain.ContractOrder{
		ContractOrderID:      contractOrderID,
		Type:                 req.Type,
		DocumentNumber:       req.DocumentNumber,
		Date:                 req.Date,
		AuthorizingReference: req.AuthorizingReference,
		Awardee:              req.Awardee,
		TaxID:                req.TaxID,
		Amount:               req.Amount,
		AmountInWords:        req.AmountInWords,
		WarrantyPeriod:       req.WarrantyPeriod,
		WarrantyRetention:    req.WarrantyRetention,
		PerformanceGuarantee: req.PerformanceGuarantee,
		BankAccount:          req.BankAccount,
		BankName:             req.BankName,
		BudgetAllocation:     req.BudgetAllocation,
		DepositAccount:       req.DepositAccount,
		DepositAccountTitle:  req.DepositAccountTitle,
		Subject:              req.Subject,
		LotDescription:       req.LotDescription,
		ExecutionPeriod:      req.ExecutionPeriod,
		IssuingAuthority:     req.IssuingAuthority,
		Country:              req.Country,
		Motto:                req.Motto,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.contractOrderRepo.SaveContractOrder(ctx, contractOrder); err != nil {
		logger.Error("Failed to save contract order", slog.String("contract_order_id", contractOrderID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save contract order: %w", err)
	}

	logger.Info("Contract order created", slog.String("contract_order_id", contractOrderID), slog.String("type", string(req.Type)))
	return &contractOrder, nil
}

func (s *contractOrderService) GetContractOrderByID(ctx context.Context, contractOrderID string) (*domain.ContractOrder, error) {
	return s.contractOrderRepo.FindContractOrderByID(ctx, contractOrderID)
}

func (s *contractOrderService) ListContractOrders(ctx context.Context, limit int, offset int) ([]domain.ContractOrder, error) {
	return s.contractOrderRepo.ListContractOrders(ctx, limit, offset)
}

func (s *contractOrderService) UpdateContractOrder(ctx context.Context, contractOrderID string, req dto.UpdateContractOrderRequest, userID string) (*domain.ContractOrder, error) {
	contractOrder, err := s.contractOrderRepo.FindContractOrderByID(ctx, contractOrderID)
	if err != nil {
		return nil, err
	}

	if req.DocumentNumber != nil {
		contractOrder.DocumentNumber = *req.DocumentNumber
	}
	if req.Date != nil {
		contractOrder.Date = *req.Date
	}
	if req.AuthorizingReference != nil {
		contractOrder.AuthorizingReference = *req.AuthorizingReference
	}
	if req.Awardee != nil {
		contractOrder.Awardee = *req.Awardee
	}
	if req.TaxID != nil {
		contractOrder.TaxID = *req.TaxID
	}
	if req.Amount != nil {
		contractOrder.Amount = *req.Amount
	}
	if req.AmountInWords != nil {
		contractOrder.AmountInWords = *req.AmountInWords
	}
	if req.WarrantyPeriod != nil {
		contractOrder.WarrantyPeriod = *req.WarrantyPeriod
	}
	if req.WarrantyRetention != nil {
		contractOrder.WarrantyRetention = *req.WarrantyRetention
	}
	if req.PerformanceGuarantee != nil {
		contractOrder.PerformanceGuarantee = *req.PerformanceGuarantee
	}
	if req.BankAccount != nil {
		contractOrder.BankAccount = *req.BankAccount
	}
	if req.BankName != nil {
		contractOrder.BankName = *req.BankName
	}
	if req.BudgetAllocation != nil {
		contractOrder.BudgetAllocation = *req.BudgetAllocation
	}
	if req.DepositAccount != nil {
		contractOrder.DepositAccount = *req.DepositAccount
	}
	if req.DepositAccountTitle != nil {
		contractOrder.DepositAccountTitle = *req.DepositAccountTitle
	}
	if req.Subject != nil {
		contractOrder.Subject = *req.Subject
	}
	if req.LotDescription != nil {
		contractOrder.LotDescription = *req.LotDescription
	}
	if req.ExecutionPeriod != nil {
		contractOrder.ExecutionPeriod = *req.ExecutionPeriod
	}
	if req.IssuingAuthority != nil {
		contractOrder.IssuingAuthority = *req.IssuingAuthority
	}
	if req.Country != nil {
		contractOrder.Country = *req.Country
	}
	if req.Motto != nil {
		contractOrder.Motto = *req.Motto
	}
	contractOrder.LastUpdatedAt = time.Now().UTC()
	contractOrder.LastUpdatedBy = userID

	if err := s.contractOrderRepo.UpdateContractOrder(ctx, *contractOrder); err != nil {
		return nil, fmt.Errorf("failed to update contract order %s: %w", contractOrderID, err)
	}
	return contractOrder, nil
}

func (s *contractOrderService) DeleteContractOrder(ctx context.Context, contractOrderID string) error {
	return s.contractOrderRepo.DeleteContractOrder(ctx, contractOrderID)
}
