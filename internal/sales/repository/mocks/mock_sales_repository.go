package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/swadhinshop/pos-backend-go/internal/sales/domain"
)

type MockSalesRepository struct {
	mock.Mock
}

func (m *MockSalesRepository) Load(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if sales := args.Get(0); sales != nil {
		return sales.([]domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesRepository) Append(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}
