package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mealscout/recipe-scout/internal/recipe"
)

var leadingNumberRe = regexp.MustCompile(`\d+`)

// Ingredients normalizes the recipeIngredient field. Accepted shapes:
// a single string, a list of strings, or a list of objects carrying a
// name/text key. Anything else yields an empty list.
func Ingredients(v any) []string {
	return stringList(v)
}

// Instructions normalizes the recipeInstructions field. Accepted
// shapes: a single string, a list of strings, a list of HowToStep
// objects, or HowToSection objects nesting steps under itemListElement.
func Instructions(v any) []string {
	switch t := v.(type) {
	case string:
		return nonEmpty([]string{t})
	case []any:
		var steps []string
		for _, item := range t {
			switch step := item.(type) {
			case string:
				steps = append(steps, step)
			case map[string]any:
				// HowToSection: recurse into its element list.
				if nested, ok := step["itemListElement"]; ok {
					steps = append(steps, Instructions(nested)...)
					continue
				}
				steps = append(steps, objectText(step))
			}
		}
		return nonEmpty(steps)
	}
	return nil
}

// Image extracts a single image URL from a string, an ImageObject, or a
// list of either.
func Image(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if u, ok := t["url"].(string); ok {
			return strings.TrimSpace(u)
		}
	case []any:
		for _, item := range t {
			if u := Image(item); u != "" {
				return u
			}
		}
	}
	return ""
}

// ParseNutrition maps a schema.org NutritionInformation object into the
// domain type. Calories tolerates "240 kcal", "240 calories" and bare
// numbers; the macros keep their source text.
func ParseNutrition(v any) recipe.Nutrition {
	obj, ok := v.(map[string]any)
	if !ok {
		return recipe.Nutrition{}
	}
	return recipe.Nutrition{
		Calories: parseCalories(obj["calories"]),
		Protein:  stringField(obj["proteinContent"]),
		Carbs:    stringField(obj["carbohydrateContent"]),
		Fat:      stringField(obj["fatContent"]),
	}
}

func parseCalories(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if m := leadingNumberRe.FindString(t); m != "" {
			n, err := strconv.Atoi(m)
			if err == nil {
				return n
			}
		}
	}
	return 0
}

func stringField(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func stringList(v any) []string {
	switch t := v.(type) {
	case string:
		return nonEmpty([]string{t})
	case []any:
		var out []string
		for _, item := range t {
			switch e := item.(type) {
			case string:
				out = append(out, e)
			case map[string]any:
				out = append(out, objectText(e))
			}
		}
		return nonEmpty(out)
	}
	return nil
}

func objectText(obj map[string]any) string {
	for _, key := range []string{"text", "name"} {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
