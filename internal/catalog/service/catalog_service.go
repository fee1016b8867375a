package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/swadhinshop/pos-backend-go/internal/catalog/domain"
	"github.com/swadhinshop/pos-backend-go/internal/catalog/repository"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
)

var (
	ErrInvalidInput    = errors.New("invalid product input")
	ErrProductNotFound = errors.New("product not found")
	// ErrStockInvariant signals a deduction that would drive stock negative.
	// The cart already caps order quantities, so hitting this is a logic
	// fault upstream, never a user error.
	ErrStockInvariant = errors.New("stock invariant violation")
)

type CatalogService interface {
	Upsert(ctx context.Context, req domain.UpsertProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, name string) error
	Find(ctx context.Context, id int64) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	List(ctx context.Context) []domain.Product

	// AdjustStock applies qty deltas (negative deducts) to the given
	// products and persists the catalog. All-or-nothing: any unknown id or
	// would-be-negative qty leaves the catalog untouched.
	AdjustStock(ctx context.Context, deltas map[int64]int) error
}

type catalogServiceImpl struct {
	mu        sync.RWMutex
	repo      repository.CatalogRepository
	products  []domain.Product
	nameIndex map[string]int64 // normalized name -> product id
}

// NewCatalogService loads the persisted catalog (seeding the starter
// catalog on first run) and owns it for the life of the process.
func NewCatalogService(ctx context.Context, repo repository.CatalogRepository) (CatalogService, error) {
	products, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &catalogServiceImpl{
		repo:      repo,
		products:  products,
		nameIndex: make(map[string]int64, len(products)),
	}
	for _, p := range products {
		s.nameIndex[normalizeName(p.Name)] = p.ID
	}
	return s, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *catalogServiceImpl) Upsert(ctx context.Context, req domain.UpsertProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name must not be empty", ErrInvalidInput)
	}
	if !req.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be greater than zero", ErrInvalidInput)
	}
	if req.Qty < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.cloneProducts()
	normalized := normalizeName(name)

	var affected *domain.Product
	if id, exists := s.nameIndex[normalized]; exists {
		// Existing product keeps its id; price and qty are replaced.
		for i := range updated {
			if updated[i].ID == id {
				updated[i].Price = req.Price
				updated[i].Qty = req.Qty
				affected = &updated[i]
				break
			}
		}
	} else {
		newID := int64(1)
		for _, p := range updated {
			if p.ID >= newID {
				newID = p.ID + 1
			}
		}
		updated = append(updated, domain.Product{ID: newID, Name: name, Price: req.Price, Qty: req.Qty})
		affected = &updated[len(updated)-1]
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		logger.Error("Svc.Upsert: failed to persist catalog", err, map[string]interface{}{"name": name})
		return nil, err
	}

	s.products = updated
	s.nameIndex[normalized] = affected.ID

	result := *affected
	return &result, nil
}

func (s *catalogServiceImpl) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := normalizeName(name)
	id, exists := s.nameIndex[normalized]
	if !exists {
		return fmt.Errorf("%w: %q", ErrProductNotFound, strings.TrimSpace(name))
	}

	updated := make([]domain.Product, 0, len(s.products)-1)
	for _, p := range s.products {
		if p.ID != id {
			updated = append(updated, p)
		}
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		logger.Error("Svc.Delete: failed to persist catalog", err, map[string]interface{}{"name": name})
		return err
	}

	s.products = updated
	delete(s.nameIndex, normalized)
	return nil
}

func (s *catalogServiceImpl) Find(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			result := p
			return &result, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
}

func (s *catalogServiceImpl) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	s.mu.RLock()
	id, exists := s.nameIndex[normalizeName(name)]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrProductNotFound, strings.TrimSpace(name))
	}
	return s.Find(ctx, id)
}

func (s *catalogServiceImpl) List(ctx context.Context) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cloneProducts()
}

func (s *catalogServiceImpl) AdjustStock(ctx context.Context, deltas map[int64]int) error {
	if len(deltas) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.cloneProducts()
	applied := 0
	for i := range updated {
		delta, ok := deltas[updated[i].ID]
		if !ok {
			continue
		}
		newQty := updated[i].Qty + delta
		if newQty < 0 {
			return fmt.Errorf("%w: product %d qty would become %d", ErrStockInvariant, updated[i].ID, newQty)
		}
		updated[i].Qty = newQty
		applied++
	}
	if applied != len(deltas) {
		return fmt.Errorf("%w: %d of %d products in stock adjustment", ErrProductNotFound, applied, len(deltas))
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		logger.Error("Svc.AdjustStock: failed to persist catalog", err, nil)
		return err
	}

	s.products = updated
	return nil
}

func (s *catalogServiceImpl) cloneProducts() []domain.Product {
	clone := make([]domain.Product, len(s.products))
	copy(clone, s.products)
	return clone
}
