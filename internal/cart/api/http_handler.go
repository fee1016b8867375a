package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/swadhinshop/pos-backend-go/internal/cart/domain"
	"github.com/swadhinshop/pos-backend-go/internal/cart/service"
	catalogService "github.com/swadhinshop/pos-backend-go/internal/catalog/service"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.DELETE("", h.ClearCart)
		cartRoutes.POST("/items", h.AddItem)
		cartRoutes.DELETE("/items/:product_id", h.RemoveItem)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartService.Snapshot())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req domain.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	snapshot, err := h.cartService.AddItem(c.Request.Context(), req.ProductID, req.Qty)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error(), "remaining": stockErr.Remaining})
		case errors.Is(err, catalogService.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Hdl.AddItem: service error", err, nil)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		}
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}
	c.JSON(http.StatusOK, h.cartService.RemoveItem(productID))
}

// ClearCart empties the cart. The destructive-op confirmation lives here,
// at the presentation boundary, not in the cart core.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pass confirm=true to clear the entire cart"})
		return
	}
	h.cartService.Clear()
	c.JSON(http.StatusOK, h.cartService.Snapshot())
}
