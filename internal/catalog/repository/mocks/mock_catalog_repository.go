package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/swadhinshop/pos-backend-go/internal/catalog/domain"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Load(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if products := args.Get(0); products != nil {
		return products.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) Save(ctx context.Context, products []domain.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}
