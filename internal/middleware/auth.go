package middleware

import (
	"net/http"
	"strings"

	"github.com/Tanmandal/Short-URL/internal/database"
	"github.com/Tanmandal/Short-URL/internal/models"
	"github.com/Tanmandal/Short-URL/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxCode   = "code"
	CtxLinkID = "linkId"
)

// tokenRejected is returned for every token failure: bad signature, expired,
// or an internal id that no longer resolves to a link. A single message and
// status keeps clients from learning which of the three happened.
const tokenRejected = "Invalid or expired token"

// AuthMiddleware resolves a bearer token to the short code it grants access
// to. Tokens carry the link's internal id, so a deleted link invalidates all
// of its tokens immediately.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": tokenRejected})
			c.Abort()
			return
		}

		var link models.Link
		if err := database.DB.Select("id", "code").First(&link, "id = ?", claims.LinkID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": tokenRejected})
			c.Abort()
			return
		}

		c.Set(CtxCode, link.Code)
		c.Set(CtxLinkID, link.ID)

		c.Next()
	}
}
