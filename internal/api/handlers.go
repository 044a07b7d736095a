package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrytoplate/backend/internal/service"
)

// HealthCheck returns the health status of the API. Always healthy; missing
// credentials surface per request, not here.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, generator service.RecipeGenerator, store service.RecipeStore, logger *zap.Logger) {
	router.GET("/health", HealthCheck)

	recipeHandler := NewRecipeHandler(generator, store, logger)
	recipeHandler.RegisterRoutes(router)
}
