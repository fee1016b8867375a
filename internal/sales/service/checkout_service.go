package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	cartService "github.com/swadhinshop/pos-backend-go/internal/cart/service"
	catalogService "github.com/swadhinshop/pos-backend-go/internal/catalog/service"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
	"github.com/swadhinshop/pos-backend-go/internal/sales/domain"
	"github.com/swadhinshop/pos-backend-go/internal/sales/repository"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrSaleNotFound = errors.New("sale not found")
)

const defaultCustomerName = "Guest Customer"

type CheckoutService interface {
	// Checkout finalizes the cart into an immutable Sale: stock is
	// deducted, the ledger is appended, the cart is cleared. On any
	// persistence failure nothing stays applied.
	Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.Sale, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
	FindByInvoiceID(ctx context.Context, invoiceID int) (*domain.Sale, error)
}

type checkoutServiceImpl struct {
	salesRepo repository.SalesRepository
	catalog   catalogService.CatalogService
	cart      cartService.CartService
}

func NewCheckoutService(salesRepo repository.SalesRepository, catalog catalogService.CatalogService, cart cartService.CartService) CheckoutService {
	return &checkoutServiceImpl{
		salesRepo: salesRepo,
		catalog:   catalog,
		cart:      cart,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, req domain.CheckoutRequest) (*domain.Sale, error) {
	snapshot := s.cart.Snapshot()
	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		customer = defaultCustomerName
	}

	// Totals use the lines' snapshot prices, never re-read live prices.
	grandTotal := decimal.Zero
	items := make([]domain.SaleItem, 0, len(snapshot.Lines))
	deductions := map[int64]int{}
	for _, line := range snapshot.Lines {
		grandTotal = grandTotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.OrderQty))))
		items = append(items, domain.SaleItem{Name: line.Name, Qty: line.OrderQty, Price: line.Price})

		if _, err := s.catalog.Find(ctx, line.ProductID); err != nil {
			if errors.Is(err, catalogService.ErrProductNotFound) {
				// Deleted mid-session: the sale still bills the snapshot,
				// but no stock is left to decrement.
				logger.Warn("Checkout: product %d (%s) no longer in catalog; billing snapshot, skipping stock deduction", line.ProductID, line.Name)
				continue
			}
			return nil, err
		}
		deductions[line.ProductID] = -line.OrderQty
	}

	if err := s.catalog.AdjustStock(ctx, deductions); err != nil {
		logger.Error("Checkout: stock deduction failed", err, nil)
		return nil, err
	}

	sale := domain.Sale{
		InvoiceID:   rand.Intn(90000) + 10000, // 5-digit invoice number
		Date:        time.Now(),
		Customer:    customer,
		Phone:       strings.TrimSpace(req.CustomerPhone),
		TotalAmount: grandTotal.Round(2),
		Items:       items,
	}

	if err := s.salesRepo.Append(ctx, sale); err != nil {
		// Put the stock back so no half-applied sale is observable.
		restore := make(map[int64]int, len(deductions))
		for id, delta := range deductions {
			restore[id] = -delta
		}
		if restoreErr := s.catalog.AdjustStock(ctx, restore); restoreErr != nil {
			logger.Error("CRITICAL: failed to restore stock after ledger append failure", restoreErr,
				map[string]interface{}{"invoice_id": sale.InvoiceID})
		}
		logger.Error("Checkout: ledger append failed", err, map[string]interface{}{"invoice_id": sale.InvoiceID})
		return nil, err
	}

	s.cart.Clear()
	logger.Info("Checkout complete: invoice %d, %d line items, total %s", sale.InvoiceID, len(sale.Items), sale.TotalAmount.StringFixed(2))
	return &sale, nil
}

func (s *checkoutServiceImpl) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.salesRepo.Load(ctx)
}

func (s *checkoutServiceImpl) FindByInvoiceID(ctx context.Context, invoiceID int) (*domain.Sale, error) {
	sales, err := s.salesRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	// Invoice numbers are random, not guaranteed unique; the most recent
	// match wins.
	for i := len(sales) - 1; i >= 0; i-- {
		if sales[i].InvoiceID == invoiceID {
			return &sales[i], nil
		}
	}
	return nil, fmt.Errorf("%w: invoice %d", ErrSaleNotFound, invoiceID)
}
