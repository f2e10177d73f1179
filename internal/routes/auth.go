package routes

import (
	"github.com/Tanmandal/Short-URL/internal/handlers"
	"github.com/Tanmandal/Short-URL/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login and the token-bound routes
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/login", handlers.Login)

	authorized := r.Group("")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("/change-password", handlers.ChangePassword)
		authorized.POST("/refresh", handlers.RefreshToken)
		authorized.GET("/validate", handlers.ValidateToken)
	}
}
