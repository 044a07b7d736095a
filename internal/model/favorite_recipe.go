package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteRecipe marks a recipe as favorited by a user. Existence is the sole
// state: toggling an existing (user_id, recipe_id) pair deletes the row.
// The index is deliberately non-unique; concurrent toggles can race, matching
// the underlying store's single-row guarantees.
type FavoriteRecipe struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UserID             string    `gorm:"size:255;not null;index:idx_favorite_user_recipe" json:"user_id"`
	RecipeID           string    `gorm:"size:255;not null;index:idx_favorite_user_recipe" json:"recipe_id"`
	RecipeName         string    `gorm:"size:255" json:"recipe_name"`
	RecipeInstructions string    `gorm:"type:text" json:"recipe_instructions"`
}

func (FavoriteRecipe) TableName() string {
	return "favorite_recipes"
}

func (f *FavoriteRecipe) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
