package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDischargeRepo is a stateful in-memory DischargeRepositoryFacade.
type fakeDischargeRepo struct {
	mu         sync.Mutex
	discharges map[string]domain.Discharge
}

func newFakeDischargeRepo() *fakeDischargeRepo {
	return &fakeDischargeRepo{discharges: make(map[string]domain.Discharge)}
}

var _ portsrepo.DischargeRepositoryFacade = (*fakeDischargeRepo)(nil)

func (f *fakeDischargeRepo) SaveDischarge(_ context.Context, d domain.Discharge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.discharges[d.DischargeID] = d
	return nil
}

func (f *fakeDischargeRepo) UpdateDischarge(_ context.Context, d domain.Discharge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.discharges[d.DischargeID]; !ok {
		return apperrors.ErrNotFound
	}
	f.discharges[d.DischargeID] = d
	return nil
}

func (f *fakeDischargeRepo) DeleteDischarge(_ context.Context, dischargeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.discharges[dischargeID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.discharges, dischargeID)
	return nil
}

func (f *fakeDischargeRepo) FindDischargeByID(_ context.Context, dischargeID string) (*domain.Discharge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.discharges[dischargeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &d, nil
}

func (f *fakeDischargeRepo) ListDischarges(_ context.Context, _ int, _ int) ([]domain.Discharge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Discharge
	for _, d := range f.discharges {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDischargeRepo) ListDischargeIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.discharges))
	for id := range f.discharges {
		ids = append(ids, id)
	}
	return ids, nil
}

func dischargeRequest() dto.CreateDischargeRequest {
	return dto.CreateDischargeRequest{
		Prestataire:    "OUEDRAOGO Issa",
		Service:        "Installation réseau",
		Montant:        decimal.NewFromInt(150000),
		DatePrestation: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Lieu:           "Ouagadougou",
		Telephone:      "70 00 00 00",
		CNI:            "B1234567",
	}
}

func TestCreateDischarge(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential discharge numbers", func(t *testing.T) {
		repo := newFakeDischargeRepo()
		svc := NewDischargeService(repo)

		first, err := svc.CreateDischarge(ctx, dischargeRequest(), "user-1")
		require.NoError(t, err)
		second, err := svc.CreateDischarge(ctx, dischargeRequest(), "user-1")
		require.NoError(t, err)

		assert.Equal(t, "DECHARGE N°001", first.DischargeID)
		assert.Equal(t, "DECHARGE N°002", second.DischargeID)
		assert.Equal(t, domain.DischargePending, first.Status)
		assert.Empty(t, first.Signature)
		assert.Nil(t, first.SignedAt)
	})

	t.Run("skips ids without a trailing number", func(t *testing.T) {
		repo := newFakeDischargeRepo()
		repo.discharges["imported"] = domain.Discharge{DischargeID: "imported"}
		repo.discharges["DECHARGE N°007"] = domain.Discharge{DischargeID: "DECHARGE N°007"}
		svc := NewDischargeService(repo)

		d, err := svc.CreateDischarge(ctx, dischargeRequest(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "DECHARGE N°008", d.DischargeID)
	})

	t.Run("concurrent creates yield unique numbers", func(t *testing.T) {
		repo := newFakeDischargeRepo()
		svc := NewDischargeService(repo)

		const n = 20
		results := make([]*domain.Discharge, n)
		errs := make([]error, n)

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = svc.CreateDischarge(ctx, dischargeRequest(), "user-1")
			}(i)
		}
		wg.Wait()

		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			require.NoError(t, errs[i])
			assert.False(t, seen[results[i].DischargeID], "duplicate id %s", results[i].DischargeID)
			seen[results[i].DischargeID] = true
		}
		assert.Len(t, repo.discharges, n)
	})
}

func TestUpdateDischarge(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial update", func(t *testing.T) {
		repo := newFakeDischargeRepo()
		svc := NewDischargeService(repo)

		d, err := svc.CreateDischarge(ctx, dischargeRequest(), "user-1")
		require.NoError(t, err)

		montant := decimal.NewFromInt(200000)
		status := domain.DischargeCompleted
		updated, err := svc.UpdateDischarge(ctx, d.DischargeID, dto.UpdateDischargeRequest{
			Montant: &montant,
			Status:  &status,
		}, "user-2")
		require.NoError(t, err)

		assert.True(t, updated.Montant.Equal(montant))
		assert.Equal(t, domain.DischargeCompleted, updated.Status)
		assert.Equal(t, "OUEDRAOGO Issa", updated.Prestataire, "untouched fields survive")
		assert.Equal(t, "user-2", updated.LastUpdatedBy)
	})

	t.Run("missing discharge yields not found", func(t *testing.T) {
		svc := NewDischargeService(newFakeDischargeRepo())
		_, err := svc.UpdateDischarge(ctx, "DECHARGE N°099", dto.UpdateDischargeRequest{}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestSignDischarge(t *testing.T) {
	ctx := context.Background()
	signReq := dto.SignDischargeRequest{
		Signature: "data:image/png;base64,iVBORw0KGgo=",
		SignedBy:  "OUEDRAOGO Issa",
	}

	t.Run("records signature and marks signed", func(t *testing.T) {
		repo := newFakeDischargeRepo()
		svc := NewDischargeService(repo)

		d, err := svc.CreateDischarge(ctx, dischargeRequest(), "user-1")
		require.NoError(t, err)

		signed, err := svc.SignDischarge(ctx, d.DischargeID, signReq, "user-1")
		require.NoError(t, err)

		assert.Equal(t, domain.DischargeSigned, signed.Status)
		assert.Equal(t, signReq.Signature, signed.Signature)
		assert.Equal(t, signReq.SignedBy, signed.SignedBy)
		require.NotNil(t, signed.SignedAt)

		stored, ok := repo.discharges[d.DischargeID]
		require.True(t, ok)
		assert.Equal(t, domain.DischargeSigned, stored.Status)
	})

	t.Run("second signature is rejected", func(t *testing.T) {
		repo := newFakeDischargeRepo()
		svc := NewDischargeService(repo)

		d, err := svc.CreateDischarge(ctx, dischargeRequest(), "user-1")
		require.NoError(t, err)
		_, err = svc.SignDischarge(ctx, d.DischargeID, signReq, "user-1")
		require.NoError(t, err)

		before := repo.discharges[d.DischargeID]
		_, err = svc.SignDischarge(ctx, d.DischargeID, signReq, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		assert.Equal(t, before, repo.discharges[d.DischargeID], "failed signing must not write")
	})

	t.Run("missing discharge yields not found", func(t *testing.T) {
		svc := NewDischargeService(newFakeDischargeRepo())
		_, err := svc.SignDischarge(ctx, "DECHARGE N°099", signReq, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
