package api

import (
	"github.com/gin-gonic/gin"

	"userhub/internal/config"
	"userhub/internal/handler"
	"userhub/internal/middleware"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.RequestTimeout(cfg))

	// Public routes
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/users", userHandler.Register)
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/authorize", authHandler.Authorize)
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/users", userHandler.List)
		protected.GET("/users/:id", userHandler.Get)
		protected.PUT("/users/:id", userHandler.Update)
		protected.DELETE("/users/:id", userHandler.Delete)
	}

	return r
}
