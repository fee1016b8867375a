package service

import (
	"context"

	"github.com/robfig/cron/v3"
	catalogService "github.com/swadhinshop/pos-backend-go/internal/catalog/service"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
)

// StockMonitor periodically scans the catalog and warns about products at
// or under the low-stock threshold.
type StockMonitor struct {
	catalog   catalogService.CatalogService
	threshold int
	scheduler *cron.Cron
}

func NewStockMonitor(catalog catalogService.CatalogService, threshold int) *StockMonitor {
	return &StockMonitor{
		catalog:   catalog,
		threshold: threshold,
		scheduler: cron.New(),
	}
}

// Start schedules the scan with the given cron spec and runs one scan
// immediately so a freshly restarted shop reports right away.
func (m *StockMonitor) Start(spec string) error {
	if _, err := m.scheduler.AddFunc(spec, func() {
		m.Scan(context.Background())
	}); err != nil {
		return err
	}
	m.scheduler.Start()
	logger.Info("Low-stock monitor started with spec %q, threshold %d", spec, m.threshold)
	m.Scan(context.Background())
	return nil
}

func (m *StockMonitor) Stop() {
	m.scheduler.Stop()
}

func (m *StockMonitor) Scan(ctx context.Context) {
	low := 0
	for _, p := range m.catalog.List(ctx) {
		if p.Qty > m.threshold {
			continue
		}
		low++
		if p.Qty == 0 {
			logger.Warn("Stock: %s is out of stock", p.Name)
		} else {
			logger.Warn("Stock: %s is low (%d left)", p.Name, p.Qty)
		}
	}
	if low == 0 {
		logger.Info("Stock: all products above threshold %d", m.threshold)
	}
}
