package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeHistory is one persisted generation result together with the inputs
// that produced it. Records are append-only; nothing in the API deletes them.
type RecipeHistory struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt           time.Time        `json:"created_at"`
	UserID              string           `gorm:"size:255;not null;index" json:"user_id"`
	Ingredients         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	DietaryRestrictions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_restrictions"`
	Recipes             JSONBRecipeArray `gorm:"type:jsonb;not null;default:'[]'" json:"recipes"`
	MealPlan            JSONBStringMap   `gorm:"type:jsonb;not null;default:'{}'" json:"meal_plan"`
	GroceryList         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"grocery_list"`
}

func (RecipeHistory) TableName() string {
	return "recipe_history"
}

func (h *RecipeHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
