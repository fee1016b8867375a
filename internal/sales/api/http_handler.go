package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogService "github.com/swadhinshop/pos-backend-go/internal/catalog/service"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
	"github.com/swadhinshop/pos-backend-go/internal/sales/domain"
	"github.com/swadhinshop/pos-backend-go/internal/sales/invoice"
	"github.com/swadhinshop/pos-backend-go/internal/sales/service"
)

type SalesHandler struct {
	checkoutService service.CheckoutService
}

func NewSalesHandler(cs service.CheckoutService) *SalesHandler {
	return &SalesHandler{checkoutService: cs}
}

func (h *SalesHandler) RegisterRoutes(router *gin.RouterGroup, ownerAuth gin.HandlerFunc) {
	router.POST("/checkout", h.Checkout)
	router.GET("/invoices/:invoice_id/print", h.PrintInvoice)

	ownerRoutes := router.Group("/sales", ownerAuth)
	{
		ownerRoutes.GET("", h.ListSales)
		ownerRoutes.GET("/export", h.ExportSales)
	}
}

func (h *SalesHandler) Checkout(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sale, err := h.checkoutService.Checkout(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty. Please add items before checkout."})
			return
		}
		if errors.Is(err, catalogService.ErrStockInvariant) {
			// Stock would have gone negative; the cart cap should make this
			// unreachable.
			logger.Error("Hdl.Checkout: stock invariant violation", err, nil)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stock bookkeeping fault, sale aborted"})
			return
		}
		logger.Error("Hdl.Checkout: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *SalesHandler) ListSales(c *gin.Context) {
	sales, err := h.checkoutService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.ListSales: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales ledger"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(sales), "sales": sales})
}

func (h *SalesHandler) PrintInvoice(c *gin.Context) {
	invoiceID, err := strconv.Atoi(c.Param("invoice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice number"})
		return
	}

	sale, err := h.checkoutService.FindByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.PrintInvoice: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sale"})
		return
	}

	html, err := invoice.RenderHTML(*sale)
	if err != nil {
		logger.Error("Hdl.PrintInvoice: render failed", err, map[string]interface{}{"invoice_id": invoiceID})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *SalesHandler) ExportSales(c *gin.Context) {
	sales, err := h.checkoutService.ListSales(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.ExportSales: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sales ledger"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=sales_report.xlsx")
	if err := invoice.WriteReport(sales, c.Writer); err != nil {
		logger.Error("Hdl.ExportSales: failed to write report", err, nil)
	}
}
