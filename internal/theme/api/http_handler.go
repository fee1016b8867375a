package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
	"github.com/swadhinshop/pos-backend-go/internal/theme/service"
)

type ThemeHandler struct {
	themeService service.ThemeService
}

func NewThemeHandler(ts service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: ts}
}

func (h *ThemeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/theme", h.GetTheme)
	router.PUT("/theme", h.SetTheme)
}

func (h *ThemeHandler) GetTheme(c *gin.Context) {
	theme, err := h.themeService.Get(c.Request.Context())
	if err != nil {
		logger.Error("Hdl.GetTheme: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *ThemeHandler) SetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.themeService.Set(c.Request.Context(), req.Theme); err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Hdl.SetTheme: service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
