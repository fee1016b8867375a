package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	catalogDomain "github.com/swadhinshop/pos-backend-go/internal/catalog/domain"
	"github.com/swadhinshop/pos-backend-go/internal/catalog/repository"
	"github.com/swadhinshop/pos-backend-go/internal/catalog/repository/mocks"
	catalogService "github.com/swadhinshop/pos-backend-go/internal/catalog/service"
)

func newCartOverStarter(t *testing.T) (CartService, catalogService.CatalogService, *mocks.MockCatalogRepository) {
	t.Helper()
	mockRepo := new(mocks.MockCatalogRepository)
	mockRepo.On("Load", mock.Anything).Return(repository.StarterProducts(), nil).Once()
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()

	catalog, err := catalogService.NewCatalogService(context.TODO(), mockRepo)
	assert.NoError(t, err)
	return NewCartService(catalog), catalog, mockRepo
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.TODO()

	t.Run("Unknown product", func(t *testing.T) {
		cart, _, _ := newCartOverStarter(t)

		_, err := cart.AddItem(ctx, 99, 1)
		assert.ErrorIs(t, err, catalogService.ErrProductNotFound)
		assert.Empty(t, cart.Snapshot().Lines)
	})

	t.Run("Non-positive and over-stock quantities", func(t *testing.T) {
		cart, _, _ := newCartOverStarter(t)

		_, err := cart.AddItem(ctx, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		_, err = cart.AddItem(ctx, 1, -3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		_, err = cart.AddItem(ctx, 1, 51) // Basmati Rice stock is 50
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Empty(t, cart.Snapshot().Lines)
	})

	t.Run("Merge past stock reports exact remaining allowance", func(t *testing.T) {
		cart, _, _ := newCartOverStarter(t)

		_, err := cart.AddItem(ctx, 1, 10)
		assert.NoError(t, err)

		_, err = cart.AddItem(ctx, 1, 45)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		var stockErr *InsufficientStockError
		assert.True(t, errors.As(err, &stockErr))
		assert.Equal(t, 40, stockErr.Remaining)

		// The failed merge must not have touched the line.
		snap := cart.Snapshot()
		assert.Len(t, snap.Lines, 1)
		assert.Equal(t, 10, snap.Lines[0].OrderQty)

		// Exactly the remaining allowance still fits.
		snap, err = cart.AddItem(ctx, 1, 40)
		assert.NoError(t, err)
		assert.Len(t, snap.Lines, 1)
		assert.Equal(t, 50, snap.Lines[0].OrderQty)
	})

	t.Run("Line snapshots price at add time", func(t *testing.T) {
		cart, catalog, _ := newCartOverStarter(t)

		snap, err := cart.AddItem(ctx, 1, 2)
		assert.NoError(t, err)
		assert.True(t, snap.Lines[0].Price.Equal(decimal.NewFromInt(120)))

		_, err = catalog.Upsert(ctx, catalogDomain.UpsertProductRequest{
			Name: "Basmati Rice (1kg)", Price: decimal.NewFromInt(150), Qty: 50,
		})
		assert.NoError(t, err)

		// The line keeps the old price.
		assert.True(t, cart.Snapshot().Lines[0].Price.Equal(decimal.NewFromInt(120)))
	})
}

func TestCartService_RemoveItemAndClear(t *testing.T) {
	ctx := context.TODO()
	cart, _, _ := newCartOverStarter(t)

	_, err := cart.AddItem(ctx, 1, 2)
	assert.NoError(t, err)
	_, err = cart.AddItem(ctx, 2, 3)
	assert.NoError(t, err)

	snap := cart.RemoveItem(1)
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, int64(2), snap.Lines[0].ProductID)

	// Absent line is a no-op.
	snap = cart.RemoveItem(99)
	assert.Len(t, snap.Lines, 1)

	cart.Clear()
	assert.Empty(t, cart.Snapshot().Lines)
	assert.Equal(t, 0, cart.Totals().TotalItems)
}

func TestCartService_Totals(t *testing.T) {
	ctx := context.TODO()

	t.Run("Sums order quantities and line totals", func(t *testing.T) {
		cart, _, _ := newCartOverStarter(t)

		_, err := cart.AddItem(ctx, 1, 2) // 2 x 120
		assert.NoError(t, err)
		_, err = cart.AddItem(ctx, 4, 3) // 3 x 70
		assert.NoError(t, err)

		totals := cart.Totals()
		assert.Equal(t, 5, totals.TotalItems)
		assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(450)))
	})

	t.Run("Grand total is rounded to 2 decimal places", func(t *testing.T) {
		cart, catalog, _ := newCartOverStarter(t)

		_, err := catalog.Upsert(ctx, catalogDomain.UpsertProductRequest{
			Name: "Loose Tea (100g)", Price: decimal.RequireFromString("33.335"), Qty: 10,
		})
		assert.NoError(t, err)

		_, err = cart.AddItem(ctx, 6, 3) // 3 x 33.335 = 100.005
		assert.NoError(t, err)

		totals := cart.Totals()
		assert.Equal(t, "100.01", totals.GrandTotal.StringFixed(2))
	})
}
