package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetByIDs(ctx context.Context, ids []string) (map[string]Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]Product), args.Error(1)
}

func (m *MockRepository) GetCategories(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func TestService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		expected := []Product{
			{ID: "prod-001", Name: "70% Dark Cacao Bar", Price: decimal.RequireFromString("8.00")},
		}
		repo.On("GetAll", ctx).Return(expected, nil)

		products, err := svc.ListProducts(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, products)
		repo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetAll", ctx).Return(nil, errors.New("db error"))

		_, err := svc.ListProducts(ctx)
		assert.Error(t, err)
	})
}

func TestService_ListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		expected := []Category{{ID: "cat-bars", Name: "Bars"}}
		repo.On("GetCategories", ctx).Return(expected, nil)

		categories, err := svc.ListCategories(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, categories)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetCategories", ctx).Return(nil, errors.New("db error"))

		_, err := svc.ListCategories(ctx)
		assert.Error(t, err)
	})
}

func TestService_FindByIDs(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	ids := []string{"prod-001", "prod-999"}
	found := map[string]Product{
		"prod-001": {ID: "prod-001", Name: "70% Dark Cacao Bar", Price: decimal.RequireFromString("8.00")},
	}
	repo.On("GetByIDs", ctx, ids).Return(found, nil)

	products, err := svc.FindByIDs(ctx, ids)
	assert.NoError(t, err)
	assert.Equal(t, found, products)
	repo.AssertExpectations(t)
}
