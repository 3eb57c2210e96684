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

// fakeContractOrderRepo is a stateful in-memory ContractOrderRepositoryFacade.
type fakeContractOrderRepo struct {
	mu     sync.Mutex
	orders map[string]domain.ContractOrder
}

func newFakeContractOrderRepo() *fakeContractOrderRepo {
	return &fakeContractOrderRepo{orders: make(map[string]domain.ContractOrder)}
}

var _ portsrepo.ContractOrderRepositoryFacade = (*fakeContractOrderRepo)(nil)

func (f *fakeContractOrderRepo) SaveContractOrder(_ context.Context, co domain.ContractOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[co.ContractOrderID] = co
	return nil
}

func (f *fakeContractOrderRepo) UpdateContractOrder(_ context.Context, co domain.ContractOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[co.ContractOrderID]; !ok {
		return apperrors.ErrNotFound
	}
	f.orders[co.ContractOrderID] = co
	return nil
}

func (f *fakeContractOrderRepo) DeleteContractOrder(_ context.Context, contractOrderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orders[contractOrderID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.orders, contractOrderID)
	return nil
}

func (f *fakeContractOrderRepo) FindContractOrderByID(_ context.Context, contractOrderID string) (*domain.ContractOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	co, ok := f.orders[contractOrderID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &co, nil
}

func (f *fakeContractOrderRepo) ListContractOrders(_ context.Context, _ int, _ int) ([]domain.ContractOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ContractOrder
	for _, co := range f.orders {
		out = append(out, co)
	}
	return out, nil
}

func (f *fakeContractOrderRepo) ListContractOrderIDs(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.orders))
	for id := range f.orders {
		ids = append(ids, id)
	}
	return ids, nil
}

func contractRequest(coType domain.ContractOrderType) dto.CreateContractOrderRequest {
	return dto.CreateContractOrderRequest{
		Type:           coType,
		DocumentNumber: "2025/0042/MINEFID",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Awardee:        "EDIBA SARL",
		Amount:         decimal.NewFromInt(25000000),
		Subject:        "Fourniture de matériel informatique",
	}
}

func TestCreateContractOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("contracts and orders share one sequence", func(t *testing.T) {
		repo := newFakeContractOrderRepo()
		svc := NewContractOrderService(repo)

		contract, err := svc.CreateContractOrder(ctx, contractRequest(domain.ContractOrderContract), "user-1")
		require.NoError(t, err)
		order, err := svc.CreateContractOrder(ctx, contractRequest(domain.ContractOrderOrder), "user-1")
		require.NoError(t, err)

		assert.Equal(t, "CONTRACT-001", contract.ContractOrderID)
		assert.Equal(t, "ORDER-002", order.ContractOrderID)
		assert.Equal(t, domain.ContractOrderContract, contract.Type)
		assert.Equal(t, domain.ContractOrderOrder, order.Type)
	})

	t.Run("sequence resumes after the highest id", func(t *testing.T) {
		repo := newFakeContractOrderRepo()
		repo.orders["ORDER-009"] = domain.ContractOrder{ContractOrderID: "ORDER-009", Type: domain.ContractOrderOrder}
		svc := NewContractOrderService(repo)

		contract, err := svc.CreateContractOrder(ctx, contractRequest(domain.ContractOrderContract), "user-1")
		require.NoError(t, err)
		assert.Equal(t, "CONTRACT-010", contract.ContractOrderID)
	})

	t.Run("concurrent creates yield unique ids", func(t *testing.T) {
		repo := newFakeContractOrderRepo()
		svc := NewContractOrderService(repo)

		const n = 20
		results := make([]*domain.ContractOrder, n)
		errs := make([]error, n)

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				coType := domain.ContractOrderContract
				if i%2 == 0 {
					coType = domain.ContractOrderOrder
				}
				results[i], errs[i] = svc.CreateContractOrder(ctx, contractRequest(coType), "user-1")
			}(i)
		}
		wg.Wait()

		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			require.NoError(t, errs[i])
			assert.False(t, seen[results[i].ContractOrderID], "duplicate id %s", results[i].ContractOrderID)
			seen[results[i].ContractOrderID] = true
		}
		assert.Len(t, repo.orders, n)
	})
}

func TestUpdateContractOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial update and preserves the rest", func(t *testing.T) {
		repo := newFakeContractOrderRepo()
		svc := NewContractOrderService(repo)

		co, err := svc.CreateContractOrder(ctx, contractRequest(domain.ContractOrderContract), "user-1")
		require.NoError(t, err)

		amount := decimal.NewFromInt(30000000)
		warranty := 12
		updated, err := svc.UpdateContractOrder(ctx, co.ContractOrderID, dto.UpdateContractOrderRequest{
			Amount:         &amount,
			WarrantyPeriod: &warranty,
		}, "user-2")
		require.NoError(t, err)

		assert.True(t, updated.Amount.Equal(amount))
		assert.Equal(t, 12, updated.WarrantyPeriod)
		assert.Equal(t, "EDIBA SARL", updated.Awardee)
		assert.Equal(t, domain.ContractOrderContract, updated.Type, "type is immutable")
		assert.Equal(t, "user-2", updated.LastUpdatedBy)
	})

	t.Run("missing contract order yields not found", func(t *testing.T) {
		svc := NewContractOrderService(newFakeContractOrderRepo())
		_, err := svc.UpdateContractOrder(ctx, "CONTRACT-099", dto.UpdateContractOrderRequest{}, "user-1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestDeleteContractOrder(t *testing.T) {
	ctx := context.Background()
	repo := newFakeContractOrderRepo()
	svc := NewContractOrderService(repo)

	co, err := svc.CreateContractOrder(ctx, contractRequest(domain.ContractOrderOrder), "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContractOrder(ctx, co.ContractOrderID))
	assert.ErrorIs(t, svc.DeleteContractOrder(ctx, co.ContractOrderID), apperrors.ErrNotFound)
}
