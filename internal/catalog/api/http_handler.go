package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/swadhinshop/pos-backend-go/internal/catalog/domain"
	"github.com/swadhinshop/pos-backend-go/internal/catalog/service"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(cs service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup, ownerAuth gin.HandlerFunc) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/:id", h.GetProduct)
	}
	ownerRoutes := router.Group("/products", ownerAuth)
	{
		ownerRoutes.POST("", h.UpsertProduct)
		ownerRoutes.DELETE("/:name", h.DeleteProduct)
	}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.catalogService.List(c.Request.Context())})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.catalogService.Find(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.GetProduct: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) UpsertProduct(c *gin.Context) {
	var req domain.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.catalogService.Upsert(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.UpsertProduct: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
		return
	}

	// Return the refreshed catalog too, so the caller re-renders without a
	// separate fetch.
	c.JSON(http.StatusOK, gin.H{
		"product":  product,
		"products": h.catalogService.List(c.Request.Context()),
	})
}

// DeleteProduct deletes by product name; the owner panel's delete box works
// by name, not id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	name := c.Param("name")
	err := h.catalogService.Delete(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.DeleteProduct: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.catalogService.List(c.Request.Context())})
}
