package service

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the user prompt sent to the model. Pure string
// formatting; empty input lists render as empty joined strings.
func BuildPrompt(ingredients, dietaryRestrictions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Given these ingredients: %s\n", strings.Join(ingredients, ", "))
	fmt.Fprintf(&b, "and dietary restrictions: %s,\n", strings.Join(dietaryRestrictions, ", "))
	b.WriteString("please provide:\n")
	b.WriteString("1. 3 possible recipes that can be made\n")
	b.WriteString("2. A weekly meal plan\n")
	b.WriteString("3. A grocery shopping list\n")
	b.WriteString("Respond with a single JSON object with exactly the keys 'recipes', 'meal_plan' and 'grocery_list', with no surrounding markdown or prose.")
	return b.String()
}
