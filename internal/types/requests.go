package types

// GenerateRecipeRequest represents the request body for generating recipes.
// Both lists may be empty and may contain duplicates; no dedup is performed.
type GenerateRecipeRequest struct {
	Ingredients         []string `json:"ingredients"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	UserID              string   `json:"user_id"`
}

// FavoriteRecipeRequest represents the request body for toggling a favorite
type FavoriteRecipeRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	RecipeID   string `json:"recipe_id" binding:"required"`
	RecipeData Recipe `json:"recipe_data"`
}
