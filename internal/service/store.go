package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pantrytoplate/backend/internal/model"
	"github.com/pantrytoplate/backend/internal/types"
)

// Favorite toggle outcomes.
const (
	FavoriteAdded   = "added"
	FavoriteRemoved = "removed"
)

// FavoriteToggle is the result of a toggle operation. Record is set only when
// the toggle added a favorite.
type FavoriteToggle struct {
	Status string
	Record *model.FavoriteRecipe
}

// StoreService persists generation history and per-user favorites. A nil db
// handle is valid and makes every operation fail with ErrStoreNotConfigured,
// so a deployment without a database still serves generation requests.
type StoreService struct {
	db *gorm.DB
}

// NewStoreService creates a new StoreService instance
func NewStoreService(db *gorm.DB) *StoreService {
	return &StoreService{db: db}
}

// SaveHistory inserts a new history record. Always a pure insert, never
// deduplicated.
func (s *StoreService) SaveHistory(ctx context.Context, userID string, result *types.GenerationResult, ingredients, dietaryRestrictions []string) (*model.RecipeHistory, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}

	record := &model.RecipeHistory{
		UserID:              userID,
		Ingredients:         model.JSONBStringArray(ingredients),
		DietaryRestrictions: model.JSONBStringArray(dietaryRestrictions),
		Recipes:             model.JSONBRecipeArray(result.Recipes),
		MealPlan:            model.JSONBStringMap(result.MealPlan),
		GroceryList:         model.JSONBStringArray(result.GroceryList),
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, &StoreError{Op: "save recipe history", Err: err}
	}
	return record, nil
}

// ListHistory returns a user's history records, newest first.
func (s *StoreService) ListHistory(ctx context.Context, userID string) ([]model.RecipeHistory, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}

	var records []model.RecipeHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, &StoreError{Op: "fetch recipe history", Err: err}
	}
	return records, nil
}

// ToggleFavorite adds a favorite if the (user_id, recipe_id) pair is absent
// and removes it if present. Read-then-write with no cross-call locking: two
// concurrent toggles for the same pair may both observe the same state.
func (s *StoreService) ToggleFavorite(ctx context.Context, userID, recipeID string, recipe types.Recipe) (*FavoriteToggle, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}

	var existing model.FavoriteRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error

	if err == nil {
		if err := s.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return nil, &StoreError{Op: "remove favorite recipe", Err: err}
		}
		return &FavoriteToggle{Status: FavoriteRemoved}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StoreError{Op: "look up favorite recipe", Err: err}
	}

	record := &model.FavoriteRecipe{
		UserID:             userID,
		RecipeID:           recipeID,
		RecipeName:         recipe.Name,
		RecipeInstructions: string(recipe.Instructions),
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, &StoreError{Op: "add favorite recipe", Err: err}
	}
	return &FavoriteToggle{Status: FavoriteAdded, Record: record}, nil
}

// ListFavorites returns a user's favorite records, newest first.
func (s *StoreService) ListFavorites(ctx context.Context, userID string) ([]model.FavoriteRecipe, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}

	var records []model.FavoriteRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, &StoreError{Op: "fetch favorite recipes", Err: err}
	}
	return records, nil
}
