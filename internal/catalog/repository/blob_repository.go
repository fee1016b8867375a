package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/swadhinshop/pos-backend-go/internal/catalog/domain"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
	"github.com/swadhinshop/pos-backend-go/internal/platform/storage"
)

type CatalogRepository interface {
	// Load returns the persisted catalog. When the blob has never been
	// written it seeds and persists the starter catalog instead.
	Load(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, products []domain.Product) error
}

type blobCatalogRepository struct {
	store storage.BlobStore
}

func NewBlobCatalogRepository(store storage.BlobStore) CatalogRepository {
	return &blobCatalogRepository{store: store}
}

// StarterProducts is the catalog a brand-new shop opens with.
func StarterProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Basmati Rice (1kg)", Price: decimal.NewFromInt(120), Qty: 50},
		{ID: 2, Name: "Refined Sugar (500g)", Price: decimal.NewFromInt(55), Qty: 100},
		{ID: 3, Name: "Cooking Oil (1L)", Price: decimal.NewFromInt(180), Qty: 30},
		{ID: 4, Name: "Fresh Milk (1L)", Price: decimal.NewFromInt(70), Qty: 45},
		{ID: 5, Name: "Masala Powder (100g)", Price: decimal.NewFromInt(65), Qty: 75},
	}
}

func (r *blobCatalogRepository) Load(ctx context.Context) ([]domain.Product, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyProducts)
	if err != nil {
		logger.Error("CatalogRepo.Load: store read failed", err, nil)
		return nil, err
	}
	if !ok {
		products := StarterProducts()
		if err := r.Save(ctx, products); err != nil {
			return nil, err
		}
		logger.Info("Catalog blob absent, seeded starter catalog with %d products", len(products))
		return products, nil
	}

	var products []domain.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		logger.Error("CatalogRepo.Load: malformed catalog blob", err, nil)
		return nil, fmt.Errorf("failed to decode catalog blob: %w", err)
	}
	return products, nil
}

func (r *blobCatalogRepository) Save(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyProducts, string(raw)); err != nil {
		logger.Error("CatalogRepo.Save: store write failed", err, nil)
		return err
	}
	return nil
}
