package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ediba/backoffice_app/internal/core/ports/services"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/ediba/backoffice_app/internal/middleware"
)

var ErrAlreadySigned = errors.New("discharge is already signed")

// dischargeService manages discharge receipts: numbering, CRUD and the
// one-shot signature operation.
type dischargeService struct {
	dischargeRepo portsrepo.DischargeRepositoryFacade

	// seqMu serializes discharge number allocation, same read-max-then-write
	// scheme as document numbering.
	seqMu sync.Mutex
}

// NewDischargeService creates a new DischargeService.
func NewDischargeService(dischargeRepo portsrepo.DischargeRepositoryFacade) portssvc.DischargeSvcFacade {
	return &dischargeService{dischargeRepo: dischargeRepo}
}

var _ portssvc.DischargeSvcFacade = (*dischargeService)(nil)

// nextTrailingSequence parses the trailing digit run of each id and returns
// the maximum plus one. Ids without a trailing number are skipped.
func nextTrailingSequence(ids []string) int {
	max := 0
	for _, id := range ids {
		i := len(id)
		for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
			i--
		}
		seq, err := strconv.Atoi(id[i:])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1
}

// formatDischargeNumber builds the discharge id, e.g. "DECHARGE N°007".
func formatDischargeNumber(seq int) string {
	return fmt.Sprintf("DECHARGE N°%03d", seq)
}

// CreateDischarge creates a new discharge with a freshly assigned number.
func (s *dischargeService) CreateDischarge(ctx context.Context, req dto.CreateDischargeRequest, creatorUserID string) (*domain.Discharge, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	s.seqMu.Lock()
	defer s.seqMu.Unlock()

	ids, err := s.dischargeRepo.ListDischargeIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list discharge ids for numbering: %w", err)
	}
	dischargeID := formatDischargeNumber(nextTrailingSequence(ids))

	discharge := domain.Discharge{
		DischargeID:    dischargeID,
		Prestataire:    req.Prestataire,
		Service:        req.Service,
		Montant:        req.Montant,
		DatePrestation: req.DatePrestation,
		Lieu:           req.Lieu,
		Telephone:      req.Telephone,
		CNI:            req.CNI,
		Status:         domain.DischargePending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.dischargeRepo.SaveDischarge(ctx, discharge); err != nil {
		logger.Error("Failed to save discharge", slog.String("discharge_id", dischargeID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save discharge: %w", err)
	}

	logger.Info("Discharge created", slog.String("discharge_id", dischargeID))
	return &discharge, nil
}

func (s *dischargeService) GetDischargeByID(ctx context.Context, dischargeID string) (*domain.Discharge, error) {
	return s.dischargeRepo.FindDischargeByID(ctx, dischargeID)
}

func (s *dischargeService) ListDischarges(ctx context.Context, limit int, offset int) ([]domain.Discharge, error) {
	return s.dischargeRepo.ListDischarges(ctx, limit, offset)
}

func (s *dischargeService) UpdateDischarge(ctx context.Context, dischargeID string, req dto.UpdateDischargeRequest, userID string) (*domain.Discharge, error) {
	discharge, err := s.dischargeRepo.FindDischargeByID(ctx, dischargeID)
	if err != nil {
		return nil, err
	}

	if req.Prestataire != nil {
		discharge.Prestataire = *req.Prestataire
	}
	if req.Service != nil {
		discharge.Service = *req.Service
	}
	if req.Montant != nil {
		discharge.Montant = *req.Montant
	}
	if req.DatePrestation != nil {
		discharge.DatePrestation = *req.DatePrestation
	}
	if req.Lieu != nil {
		discharge.Lieu = *req.Lieu
	}
	if req.Telephone != nil {
		discharge.Telephone = *req.Telephone
	}
	if req.CNI != nil {
		discharge.CNI = *req.CNI
	}
	if req.Status != nil {
		discharge.Status = *req.Status
	}
	discharge.LastUpdatedAt = time.Now().UTC()
	discharge.LastUpdatedBy = userID

	if err := s.dischargeRepo.UpdateDischarge(ctx, *discharge); err != nil {
		return nil, fmt.Errorf("failed to update discharge %s: %w", dischargeID, err)
	}
	return discharge, nil
}

func (s *dischargeService) DeleteDischarge(ctx context.Context, dischargeID string) error {
	return s.dischargeRepo.DeleteDischarge(ctx, dischargeID)
}

// SignDischarge records the provider's signature and marks the discharge
// signed. Signing is one-shot: a signed discharge cannot be signed again.
func (s *dischargeService) SignDischarge(ctx context.Context, dischargeID string, req dto.SignDischargeRequest, userID string) (*domain.Discharge, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	discharge, err := s.dischargeRepo.FindDischargeByID(ctx, dischargeID)
	if err != nil {
		return nil, err
	}
	if discharge.Status == domain.DischargeSigned {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrAlreadySigned)
	}

	now := time.Now().UTC()
	discharge.Signature = req.Signature
	discharge.SignedBy = req.SignedBy
	discharge.SignedAt = &now
	discharge.Status = domain.DischargeSigned
	discharge.LastUpdatedAt = now
	discharge.LastUpdatedBy = userID

	if err := s.dischargeRepo.UpdateDischarge(ctx, *discharge); err != nil {
		return nil, fmt.Errorf("failed to sign discharge %s: %w", dischargeID, err)
	}

	logger.Info("Discharge signed", slog.String("discharge_id", dischargeID), slog.String("signed_by", req.SignedBy))
	return discharge, nil
}
