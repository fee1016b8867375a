package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	cartDomain "github.com/swadhinshop/pos-backend-go/internal/cart/domain"
	catalogService "github.com/swadhinshop/pos-backend-go/internal/catalog/service"
)

var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports the exact allowance left when a merge
// would push a line past the product's available stock.
type InsufficientStockError struct {
	ProductID int64
	Name      string
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("cannot add more %s: only %d left in stock", e.Name, e.Remaining)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type CartService interface {
	AddItem(ctx context.Context, productID int64, requestedQty int) (cartDomain.CartSnapshot, error)
	// RemoveItem drops the whole line for the product. Absent lines are a
	// no-op, not an error.
	RemoveItem(productID int64) cartDomain.CartSnapshot
	Clear()
	Totals() cartDomain.CartTotals
	Snapshot() cartDomain.CartSnapshot
}

type cartServiceImpl struct {
	mu      sync.RWMutex
	lines   []cartDomain.CartLine
	catalog catalogService.CatalogService
}

func NewCartService(catalog catalogService.CatalogService) CartService {
	return &cartServiceImpl{catalog: catalog}
}

func (s *cartServiceImpl) AddItem(ctx context.Context, productID int64, requestedQty int) (cartDomain.CartSnapshot, error) {
	product, err := s.catalog.Find(ctx, productID)
	if err != nil {
		return s.Snapshot(), err
	}
	if requestedQty <= 0 {
		return s.Snapshot(), fmt.Errorf("%w: requested %d", ErrInvalidQuantity, requestedQty)
	}
	if requestedQty > product.Qty {
		return s.Snapshot(), fmt.Errorf("%w: requested %d of %s, only %d in stock",
			ErrInvalidQuantity, requestedQty, product.Name, product.Qty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != productID {
			continue
		}
		if s.lines[i].OrderQty+requestedQty > product.Qty {
			return s.snapshotLocked(), &InsufficientStockError{
				ProductID: productID,
				Name:      product.Name,
				Remaining: product.Qty - s.lines[i].OrderQty,
			}
		}
		s.lines[i].OrderQty += requestedQty
		return s.snapshotLocked(), nil
	}

	s.lines = append(s.lines, cartDomain.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		OrderQty:  requestedQty,
	})
	return s.snapshotLocked(), nil
}

func (s *cartServiceImpl) RemoveItem(productID int64) cartDomain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return s.snapshotLocked()
}

func (s *cartServiceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
}

func (s *cartServiceImpl) Totals() cartDomain.CartTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.totalsLocked()
}

func (s *cartServiceImpl) Snapshot() cartDomain.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *cartServiceImpl) totalsLocked() cartDomain.CartTotals {
	totalItems := 0
	grandTotal := decimal.Zero
	for _, line := range s.lines {
		totalItems += line.OrderQty
		grandTotal = grandTotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.OrderQty))))
	}
	return cartDomain.CartTotals{
		TotalItems: totalItems,
		GrandTotal: grandTotal.Round(2),
	}
}

func (s *cartServiceImpl) snapshotLocked() cartDomain.CartSnapshot {
	lines := make([]cartDomain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return cartDomain.CartSnapshot{Lines: lines, Totals: s.totalsLocked()}
}
