package service

import (
	"context"

	"github.com/pantrytoplate/backend/internal/model"
	"github.com/pantrytoplate/backend/internal/types"
)

// RecipeGenerator defines the interface for recipe generation
type RecipeGenerator interface {
	GenerateRecipes(ctx context.Context, ingredients, dietaryRestrictions []string) (*types.GenerationResult, error)
}

// RecipeStore defines the interface for history and favorites persistence
type RecipeStore interface {
	SaveHistory(ctx context.Context, userID string, result *types.GenerationResult, ingredients, dietaryRestrictions []string) (*model.RecipeHistory, error)
	ListHistory(ctx context.Context, userID string) ([]model.RecipeHistory, error)
	ToggleFavorite(ctx context.Context, userID, recipeID string, recipe types.Recipe) (*FavoriteToggle, error)
	ListFavorites(ctx context.Context, userID string) ([]model.FavoriteRecipe, error)
}
