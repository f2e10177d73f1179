package routes

import (
	"github.com/Tanmandal/Short-URL/internal/handlers"
	"github.com/Tanmandal/Short-URL/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterShortenerRoutes registers the lifecycle and redirect routes. The
// static route names here make up the reserved-word set that ValidCode
// rejects, so a short code can never shadow a route.
func RegisterShortenerRoutes(r *gin.Engine) {
	r.GET("/", handlers.Welcome)
	r.GET("/health", handlers.HealthCheck)
	r.POST("/create", handlers.CreateShortURL)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/change-url", handlers.ChangeURL)
		protected.DELETE("/delete", handlers.DeleteShortURL)
		protected.POST("/pause", handlers.PauseShortURL)
		protected.POST("/resume", handlers.ResumeShortURL)
		protected.POST("/reset", handlers.ResetHits)
		protected.GET("/details", handlers.GetDetails)
	}

	// Static routes above win over the code match.
	r.GET("/:code", handlers.RedirectShortURL)
	r.GET("/:code/*subpath", handlers.RedirectShortURL)
}
