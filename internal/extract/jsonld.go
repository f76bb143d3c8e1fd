package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mealscout/recipe-scout/internal/recipe"
)

var jsonLDScriptRe = regexp.MustCompile(`(?s)<script[^>]*type=["']application/ld\+json["'][^>]*>(.*?)</script>`)

// RecipeFromJSONLD scans page HTML for embedded schema.org Recipe
// markup and maps the first match into the domain type. Returns nil
// when the page carries no usable recipe metadata; it never fails.
func RecipeFromJSONLD(html string) *recipe.Recipe {
	for _, match := range jsonLDScriptRe.FindAllStringSubmatch(html, -1) {
		if len(match) < 2 {
			continue
		}
		raw := strings.TrimSpace(match[1])

		if r := recipeFromDocument(raw); r != nil {
			return r
		}

		var arr []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			for _, item := range arr {
				if r := recipeFromDocument(string(item)); r != nil {
					return r
				}
			}
		}
	}
	return nil
}

// recipeFromDocument tries one JSON-LD object, descending into @graph
// containers.
func recipeFromDocument(raw string) *recipe.Recipe {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil
	}

	if graph, ok := obj["@graph"].([]any); ok {
		for _, item := range graph {
			itemBytes, err := json.Marshal(item)
			if err != nil {
				continue
			}
			if r := recipeFromDocument(string(itemBytes)); r != nil {
				return r
			}
		}
		return nil
	}

	if !isRecipeType(obj["@type"]) {
		return nil
	}
	return mapRecipe(obj)
}

func isRecipeType(typeField any) bool {
	switch v := typeField.(type) {
	case string:
		return v == "Recipe" || strings.HasSuffix(v, "/Recipe")
	case []any:
		for _, t := range v {
			if s, ok := t.(string); ok && (s == "Recipe" || strings.HasSuffix(s, "/Recipe")) {
				return true
			}
		}
	}
	return false
}

func mapRecipe(obj map[string]any) *recipe.Recipe {
	name := stringField(obj["name"])
	if name == "" {
		return nil
	}
	r := &recipe.Recipe{
		Name:        name,
		Description: stringField(obj["description"]),
		PrepTime:    HumanDuration(stringField(obj["prepTime"])),
		CookTime:    HumanDuration(stringField(obj["cookTime"])),
		Ingredients: Ingredients(obj["recipeIngredient"]),
		Steps:       Instructions(obj["recipeInstructions"]),
		Nutrition:   ParseNutrition(obj["nutrition"]),
		ImageURL:    Image(obj["image"]),
	}
	if r.CookTime == "" {
		r.CookTime = HumanDuration(stringField(obj["totalTime"]))
	}
	// Legacy markup spells the ingredient list differently.
	if len(r.Ingredients) == 0 {
		r.Ingredients = Ingredients(obj["ingredients"])
	}
	return r
}
