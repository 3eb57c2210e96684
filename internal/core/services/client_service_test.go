package services

import (
	"context"
	"testing"

	"github.com/ediba/backoffice_app/internal/apperrors"
	"github.com/ediba/backoffice_app/internal/core/domain"
	portsrepo "github.com/ediba/backoffice_app/internal/core/ports/repositories"
	"github.com/ediba/backoffice_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func TestCreateClient(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	svc := NewClientService(repo)

	repo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil)

	client, err := svc.CreateClient(ctx, dto.CreateClientRequest{
		Name: "SONABEL",
		NIF:  "00012345A",
		City: "Ouagadougou",
	}, "user-1")
	require.NoError(t, err)

	assert.NotEmpty(t, client.ClientID)
	assert.Equal(t, "SONABEL", client.Name)
	assert.Equal(t, "user-1", client.CreatedBy)
	repo.AssertExpectations(t)
}

func TestUpdateClientPartial(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	svc := NewClientService(repo)

	existing := &domain.Client{
		ClientID: "client-1",
		Name:     "SONABEL",
		City:     "Ouagadougou",
		Phone:    "70 00 00 00",
	}
	repo.On("FindClientByID", ctx, "client-1").Return(existing, nil)
	repo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Phone == "71 11 11 11" && c.Name == "SONABEL" && c.City == "Ouagadougou"
	})).Return(nil)

	phone := "71 11 11 11"
	updated, err := svc.UpdateClient(ctx, "client-1", dto.UpdateClientRequest{Phone: &phone}, "user-2")
	require.NoError(t, err)

	assert.Equal(t, "71 11 11 11", updated.Phone)
	assert.Equal(t, "SONABEL", updated.Name, "omitted fields stay untouched")
	assert.Equal(t, "user-2", updated.LastUpdatedBy)
	repo.AssertExpectations(t)
}

func TestUpdateClientNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockClientRepository)
	svc := NewClientService(repo)

	repo.On("FindClientByID", ctx, "missing").Return(nil, apperrors.ErrNotFound)

	name := "X"
	_, err := svc.UpdateClient(ctx, "missing", dto.UpdateClientRequest{Name: &name}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "UpdateClient")
}
