package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-disctracker/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	// Collection endpoints act on the user identified by the bearer token
	collection := v1.Group("/collection", middleware.UserAuth(authCfg))
	{
		collection.POST("/items", handler.AddCollectionItem)
		collection.GET("/items", handler.ListCollectionItems)
		collection.GET("/items/:external_id", handler.GetCollectionItem)
		collection.DELETE("/items/:external_id", handler.RemoveCollectionItem)
		collection.POST("/items/:external_id/refresh", handler.RefreshCollectionItem)
	}

	// Admin endpoints (requires API key authentication only)
	admin := v1.Group("/admin", middleware.APIKeyAuth(authCfg))
	{
		admin.POST("/prices/refresh", handler.TriggerPriceRefresh)
		admin.GET("/prices/refresh/:run_id", handler.GetPriceRefresh)
	}
}
