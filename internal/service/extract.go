package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pantrytoplate/backend/internal/types"
)

var fencedBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// An extractStrategy picks a candidate JSON substring out of the raw model
// text, returning false when the text contains nothing for it to try.
type extractStrategy func(text string) (string, bool)

func wholeText(text string) (string, bool) {
	return strings.TrimSpace(text), true
}

func fencedBlock(text string) (string, bool) {
	matches := fencedBlockRegex.FindStringSubmatch(text)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}

// braceSpan takes the greedy span from the first '{' to the last '}'. When the
// model emits multiple objects this captures all of them and fails, rather
// than matching the leftmost balanced object. Kept for compatibility with the
// original behavior.
func braceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// Strategies are tried in strict order; the first candidate that unmarshals
// into the expected object wins.
var extractStrategies = []extractStrategy{wholeText, fencedBlock, braceSpan}

// ExtractGenerationResult recovers the structured document from the model's
// free-text reply. Keys absent from the parsed object are treated as empty
// rather than failing, since the model does not always populate all three
// sections. If every strategy fails the raw text is surfaced in a ParseError.
func ExtractGenerationResult(text string) (*types.GenerationResult, error) {
	for _, strategy := range extractStrategies {
		candidate, ok := strategy(text)
		if !ok {
			continue
		}

		var result types.GenerationResult
		if err := json.Unmarshal([]byte(candidate), &result); err != nil {
			continue
		}

		if result.Recipes == nil {
			result.Recipes = []types.Recipe{}
		}
		if result.MealPlan == nil {
			result.MealPlan = map[string]string{}
		}
		if result.GroceryList == nil {
			result.GroceryList = []string{}
		}
		return &result, nil
	}

	return nil, &ParseError{Raw: text}
}
