package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrytoplate/backend/internal/service"
	"github.com/pantrytoplate/backend/internal/types"
)

// RecipeHandler handles recipe generation, history and favorites requests
type RecipeHandler struct {
	generator service.RecipeGenerator
	store     service.RecipeStore
	logger    *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(generator service.RecipeGenerator, store service.RecipeStore, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/generate-recipe", h.GenerateRecipe)
	router.GET("/recipe-history/:user_id", h.GetRecipeHistory)
	router.POST("/favorite-recipe", h.FavoriteRecipe)
	router.GET("/favorite-recipes/:user_id", h.GetFavoriteRecipes)
}

// GenerateRecipe handles POST /generate-recipe
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req types.GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result, err := h.generator.GenerateRecipes(c.Request.Context(), req.Ingredients, req.DietaryRestrictions)
	if err != nil {
		h.logger.Error("recipe generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if req.UserID != "" {
		// Best effort: a persistence failure must not cost the caller their
		// generated content.
		if _, err := h.store.SaveHistory(c.Request.Context(), req.UserID, result, req.Ingredients, req.DietaryRestrictions); err != nil {
			h.logger.Warn("failed to save recipe history",
				zap.String("user_id", req.UserID),
				zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

// GetRecipeHistory handles GET /recipe-history/:user_id
func (h *RecipeHandler) GetRecipeHistory(c *gin.Context) {
	userID := c.Param("user_id")

	records, err := h.store.ListHistory(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch recipe history", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// FavoriteRecipe handles POST /favorite-recipe
func (h *RecipeHandler) FavoriteRecipe(c *gin.Context) {
	var req types.FavoriteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	toggle, err := h.store.ToggleFavorite(c.Request.Context(), req.UserID, req.RecipeID, req.RecipeData)
	if err != nil {
		h.logger.Error("failed to toggle favorite recipe",
			zap.String("user_id", req.UserID),
			zap.String("recipe_id", req.RecipeID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	if toggle.Status == service.FavoriteAdded {
		c.JSON(http.StatusOK, gin.H{"status": toggle.Status, "recipe": toggle.Record})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": toggle.Status, "recipe_id": req.RecipeID})
}

// GetFavoriteRecipes handles GET /favorite-recipes/:user_id
func (h *RecipeHandler) GetFavoriteRecipes(c *gin.Context) {
	userID := c.Param("user_id")

	records, err := h.store.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch favorite recipes", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
