package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// InstructionsText is the free-text instructions of a recipe. Models sometimes
// return instructions as an array of steps instead of a single string, so it
// accepts either and flattens arrays into newline-separated text.
type InstructionsText string

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *InstructionsText) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*t = InstructionsText(str)
		return nil
	}

	var steps []string
	if err := json.Unmarshal(data, &steps); err == nil {
		*t = InstructionsText(strings.Join(steps, "\n"))
		return nil
	}

	return fmt.Errorf("invalid instructions format")
}

// Recipe is a single generated recipe. Recipes carry no intrinsic identifier;
// callers mint a recipe_id when favoriting.
type Recipe struct {
	Name         string           `json:"name"`
	Instructions InstructionsText `json:"instructions"`
}

// GenerationResult is the structured document recovered from the model's
// reply: candidate recipes, a weekly meal plan keyed by day label, and a
// grocery list. Day labels are whatever the model produced, not necessarily
// the seven canonical weekday names.
type GenerationResult struct {
	Recipes     []Recipe          `json:"recipes"`
	MealPlan    map[string]string `json:"meal_plan"`
	GroceryList []string          `json:"grocery_list"`
}
