package main

import (
	"context"

	"github.com/gin-gonic/gin"
	cartAPI "github.com/swadhinshop/pos-backend-go/internal/cart/api"
	cartService "github.com/swadhinshop/pos-backend-go/internal/cart/service"
	catalogAPI "github.com/swadhinshop/pos-backend-go/internal/catalog/api"
	catalogRepo "github.com/swadhinshop/pos-backend-go/internal/catalog/repository"
	catalogService "github.com/swadhinshop/pos-backend-go/internal/catalog/service"
	"github.com/swadhinshop/pos-backend-go/internal/platform/config"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
	"github.com/swadhinshop/pos-backend-go/internal/platform/storage"
	salesAPI "github.com/swadhinshop/pos-backend-go/internal/sales/api"
	salesRepo "github.com/swadhinshop/pos-backend-go/internal/sales/repository"
	salesService "github.com/swadhinshop/pos-backend-go/internal/sales/service"
	"github.com/swadhinshop/pos-backend-go/internal/shop/middleware"
	themeAPI "github.com/swadhinshop/pos-backend-go/internal/theme/api"
	themeRepo "github.com/swadhinshop/pos-backend-go/internal/theme/repository"
	themeService "github.com/swadhinshop/pos-backend-go/internal/theme/service"
)

func main() {
	serverCfg, storeCfg, shopCfg := config.Load()
	logger.SetLevel(shopCfg.LogLevel)

	logger.Info("Starting Swadhin Shop POS server...")

	// Setup Persistent Store
	var store storage.BlobStore
	if storeCfg.Ephemeral {
		logger.Warn("Running with an in-memory store; catalog and sales will not survive a restart")
		store = storage.NewMemoryStore()
	} else {
		sqliteStore, closeStore, err := storage.NewSQLiteStore(storeCfg.DBPath)
		if err != nil {
			logger.Error("Failed to open blob store", err, map[string]interface{}{"path": storeCfg.DBPath})
			return
		}
		defer closeStore()
		store = sqliteStore
	}

	// Setup Dependencies
	ctx := context.Background()
	catalog, err := catalogService.NewCatalogService(ctx, catalogRepo.NewBlobCatalogRepository(store))
	if err != nil {
		logger.Error("Failed to load catalog", err, nil)
		return
	}
	cart := cartService.NewCartService(catalog)
	checkout := salesService.NewCheckoutService(salesRepo.NewBlobSalesRepository(store), catalog, cart)
	theme := themeService.NewThemeService(themeRepo.NewBlobThemeRepository(store))

	if shopCfg.LowStockSchedule != "" {
		monitor := salesService.NewStockMonitor(catalog, shopCfg.LowStockThreshold)
		if err := monitor.Start(shopCfg.LowStockSchedule); err != nil {
			logger.Error("Failed to start low-stock monitor", err, map[string]interface{}{"spec": shopCfg.LowStockSchedule})
			return
		}
		defer monitor.Stop()
	}

	// Setup Gin Router
	router := gin.New()
	router.Use(middleware.RequestLogger(logger.Base()), gin.Recovery())

	ownerAuth := middleware.OwnerAuth(shopCfg.OwnerPassword)
	apiV1 := router.Group("/api/v1")
	catalogAPI.NewCatalogHandler(catalog).RegisterRoutes(apiV1, ownerAuth)
	cartAPI.NewCartHandler(cart).RegisterRoutes(apiV1)
	salesAPI.NewSalesHandler(checkout).RegisterRoutes(apiV1, ownerAuth)
	themeAPI.NewThemeHandler(theme).RegisterRoutes(apiV1)

	logger.Info("POS server running on port %s", serverCfg.Port)
	if errSrv := router.Run(serverCfg.Port); errSrv != nil {
		logger.Error("Failed to run POS server", errSrv, nil)
	}
}
