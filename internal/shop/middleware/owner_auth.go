package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swadhinshop/pos-backend-go/internal/platform/logger"
)

const ownerPasswordHeader = "X-Owner-Password"

// OwnerAuth gates the owner-panel routes (catalog edits, sales history)
// behind the shop owner's password.
func OwnerAuth(ownerPassword string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(ownerPasswordHeader)
		if supplied == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ownerPasswordHeader + " header required"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(ownerPassword)) != 1 {
			logger.Warn("OwnerAuth: login failed for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login Failed. Incorrect Password."})
			return
		}
		c.Next()
	}
}
