package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
	"github.com/swadhinshop/pos-backend-go/internal/platform/storage"
	"github.com/swadhinshop/pos-backend-go/internal/sales/domain"
)

// SalesRepository is the append-only sales ledger. The whole ledger is
// rewritten on every append, matching the original write-through blob.
type SalesRepository interface {
	Load(ctx context.Context) ([]domain.Sale, error)
	Append(ctx context.Context, sale domain.Sale) error
}

type blobSalesRepository struct {
	store storage.BlobStore
}

func NewBlobSalesRepository(store storage.BlobStore) SalesRepository {
	return &blobSalesRepository{store: store}
}

func (r *blobSalesRepository) Load(ctx context.Context) ([]domain.Sale, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeySales)
	if err != nil {
		logger.Error("SalesRepo.Load: store read failed", err, nil)
		return nil, err
	}
	if !ok {
		return []domain.Sale{}, nil
	}

	var sales []domain.Sale
	if err := json.Unmarshal([]byte(raw), &sales); err != nil {
		logger.Error("SalesRepo.Load: malformed sales blob", err, nil)
		return nil, fmt.Errorf("failed to decode sales blob: %w", err)
	}
	return sales, nil
}

func (r *blobSalesRepository) Append(ctx context.Context, sale domain.Sale) error {
	sales, err := r.Load(ctx)
	if err != nil {
		return err
	}
	sales = append(sales, sale)

	raw, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("failed to encode sales ledger: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeySales, string(raw)); err != nil {
		logger.Error("SalesRepo.Append: store write failed", err, map[string]interface{}{"invoice_id": sale.InvoiceID})
		return err
	}
	logger.Info("Sales ledger now holds %d transactions", len(sales))
	return nil
}
