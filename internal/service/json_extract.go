package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pageza/calorie-counter/backend/internal/models"
)

const parseFailureNote = "Failed to parse model output"

// parseFailurePlaceholder is what an unparseable model reply turns into. It never passes
// isValidEstimate, so it always triggers the retry or fallback.
func parseFailurePlaceholder() map[string]any {
	return map[string]any{
		"total_calories": 0,
		"items":          []any{},
		"confidence":     0.0,
		"notes":          parseFailureNote,
	}
}

// ExtractJSONObject decodes a model reply. It tries the whole text first, then the span between
// the first '{' and the last '}', and finally returns the parse-failure placeholder. The first
// return value is false only for the placeholder.
func ExtractJSONObject(text string) (map[string]any, bool) {
	var direct any
	if err := json.Unmarshal([]byte(text), &direct); err == nil {
		if obj, ok := direct.(map[string]any); ok {
			return obj, true
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		var obj map[string]any
		if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err == nil && obj != nil {
			return obj, true
		}
	}

	return parseFailurePlaceholder(), false
}

// isValidEstimate requires total_calories and items to be present and at least one of
// them to carry information.
func isValidEstimate(parsed map[string]any) bool {
	total, hasTotal := parsed["total_calories"]
	items, hasItems := parsed["items"]
	if !hasTotal || !hasItems {
		return false
	}

	if n, ok := total.(float64); ok && n > 0 {
		return true
	}
	list, ok := items.([]any)
	return ok && len(list) > 0
}

// estimateFromParsed converts a reply that passed isValidEstimate. Models are loose with types,
// so numbers may arrive as strings and labels as numbers; unusable values become zero.
func estimateFromParsed(parsed map[string]any) *Estimate {
	est := &Estimate{
		TotalCalories: toFloat(parsed["total_calories"]),
		Items:         []models.MealItem{},
		Confidence:    toFloat(parsed["confidence"]),
		Notes:         toString(parsed["notes"]),
	}

	list, _ := parsed["items"].([]any)
	for _, raw := range list {
		switch item := raw.(type) {
		case map[string]any:
			est.Items = append(est.Items, models.MealItem{
				Name:          toString(item["name"]),
				QuantityUnits: toString(item["quantity_units"]),
				Calories:      toFloat(item["calories"]),
				Confidence:    toFloat(item["confidence"]),
			})
		case string:
			est.Items = append(est.Items, models.MealItem{Name: item})
		}
	}
	return est
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
