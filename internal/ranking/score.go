// Package ranking scores the candidate pool against the search
// parameters and returns the best matches.
package ranking

import (
	"sort"
	"strings"

	"github.com/mealscout/recipe-scout/internal/extract"
	"github.com/mealscout/recipe-scout/internal/recipe"
)

// DefaultTopN bounds the ranked output when the caller passes no limit.
const DefaultTopN = 5

// Additive scoring weights. An ingredient hit in the ingredient list
// outweighs one buried in prose; blowing the time budget costs more
// than fitting it earns.
const (
	weightIngredientList  = 15
	weightTextMatch       = 8
	weightTimeFits        = 5
	weightTimeExceeds     = -15
	weightCuisine         = 8
	weightNutrition       = 2
	weightManyIngredients = 3
	weightManySteps       = 3
	weightImage           = 1
)

// Score computes the additive match score for one recipe.
func Score(r recipe.Recipe, params recipe.SearchParams) int {
	score := 0
	ingredients := lowerAll(r.Ingredients)
	text := recipeText(r)

	for _, term := range queryTerms(params.Ingredients) {
		switch {
		case containsTerm(ingredients, term):
			score += weightIngredientList
		case strings.Contains(text, term):
			score += weightTextMatch
		}
	}
	for _, term := range queryTerms(strings.Join(params.RelatedTerms, " ")) {
		if containsTerm(ingredients, term) || strings.Contains(text, term) {
			score += weightTextMatch
		}
	}

	if limit := extract.DurationMinutes(params.TimeAvailable); limit > 0 {
		total := extract.DurationMinutes(r.PrepTime) + extract.DurationMinutes(r.CookTime)
		switch {
		case total == 0:
			// Unknown cook time earns neither bonus nor penalty.
		case total <= limit:
			score += weightTimeFits
		default:
			score += weightTimeExceeds
		}
	}

	if cuisine := strings.ToLower(strings.TrimSpace(params.Cuisine)); cuisine != "" && strings.Contains(text, cuisine) {
		score += weightCuisine
	}

	if r.Nutrition.HasData() {
		score += weightNutrition
	}
	if len(r.Ingredients) >= 3 {
		score += weightManyIngredients
	}
	if recipe.RealStepCount(r.Steps) >= 3 {
		score += weightManySteps
	}
	if r.ImageURL != "" {
		score += weightImage
	}
	return score
}

// Rank scores the pool, applies the strictness filter, and returns up
// to topN recipes sorted by score descending. Ties break on the
// case-insensitive name so equal pools always rank identically.
func Rank(pool []recipe.Recipe, params recipe.SearchParams, topN int) []recipe.Recipe {
	if topN <= 0 {
		topN = DefaultTopN
	}

	type scored struct {
		recipe recipe.Recipe
		score  int
	}
	ranked := make([]scored, 0, len(pool))
	for _, r := range pool {
		s := Score(r, params)
		if params.Strictness == recipe.StrictnessStrict && s <= 0 {
			continue
		}
		ranked = append(ranked, scored{recipe: r, score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return strings.ToLower(ranked[i].recipe.Name) < strings.ToLower(ranked[j].recipe.Name)
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	out := make([]recipe.Recipe, len(ranked))
	for i, s := range ranked {
		out[i] = s.recipe
	}
	return out
}

// queryTerms splits free text into lowercase match terms, dropping
// single-character noise.
func queryTerms(raw string) []string {
	cleaned := strings.NewReplacer(",", " ", ";", " ").Replace(strings.ToLower(raw))
	var terms []string
	for _, f := range strings.Fields(cleaned) {
		if len(f) >= 2 {
			terms = append(terms, f)
		}
	}
	return terms
}

// recipeText is the recipe's full lowercase prose for weak matching.
func recipeText(r recipe.Recipe) string {
	parts := make([]string, 0, 2+len(r.Ingredients)+len(r.Steps))
	parts = append(parts, r.Name, r.Description)
	parts = append(parts, r.Ingredients...)
	parts = append(parts, r.Steps...)
	return strings.ToLower(strings.Join(parts, " "))
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func containsTerm(entries []string, term string) bool {
	for _, e := range entries {
		if strings.Contains(e, term) {
			return true
		}
	}
	return false
}
