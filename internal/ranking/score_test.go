package ranking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mealscout/recipe-scout/internal/recipe"
)

func baseRecipe(name string) recipe.Recipe {
	return recipe.Recipe{
		Name:        name,
		Ingredients: []string{"8 oz spaghetti", "1 lemon"},
		Steps:       []string{"Boil the pasta, toss with lemon."},
	}
}

func TestScoreVerbatimIngredientWorthFifteen(t *testing.T) {
	t.Parallel()

	params := recipe.SearchParams{Ingredients: "garlic"}

	without := baseRecipe("Lemon Pasta")
	with := baseRecipe("Lemon Pasta")
	with.Ingredients = append(with.Ingredients, "4 cloves garlic")

	// Adding a third ingredient also triggers the completeness bonus,
	// so pad the control to the same count with a non-matching entry.
	without.Ingredients = append(without.Ingredients, "2 tbsp olive oil")

	require.Equal(t, 15, Score(with, params)-Score(without, params))
}

func TestScoreTextMatchIsWeaker(t *testing.T) {
	t.Parallel()

	params := recipe.SearchParams{Ingredients: "garlic"}

	inList := baseRecipe("Pasta")
	inList.Ingredients = []string{"4 cloves garlic", "8 oz spaghetti"}

	inProse := baseRecipe("Pasta")
	inProse.Description = "Finished with plenty of garlic."

	require.Equal(t, 15, Score(inList, params)-Score(baseRecipe("Pasta"), params))
	require.Equal(t, 8, Score(inProse, params)-Score(baseRecipe("Pasta"), params))
}

func TestScoreRelatedTerms(t *testing.T) {
	t.Parallel()

	params := recipe.SearchParams{
		Ingredients:  "chicken",
		RelatedTerms: []string{"thigh"},
	}

	r := baseRecipe("Braised Thighs")
	r.Ingredients = []string{"6 chicken thighs", "1 onion"}

	// chicken in the list (+15) plus the related term match (+8).
	require.Equal(t, 23, Score(r, params)-Score(baseRecipe("Plain Pasta"), params))
}

func TestScoreTimeConstraint(t *testing.T) {
	t.Parallel()

	params := recipe.SearchParams{Ingredients: "zzz", TimeAvailable: "30 min"}

	fits := baseRecipe("Quick")
	fits.PrepTime = "10 min"
	fits.CookTime = "15 min"

	exceeds := baseRecipe("Slow")
	exceeds.PrepTime = "20 min"
	exceeds.CookTime = "45 min"

	unknown := baseRecipe("Mystery")

	require.Equal(t, 5, Score(fits, params)-Score(unknown, params))
	require.Equal(t, -15, Score(exceeds, params)-Score(unknown, params))
}

func TestScoreCuisineMatch(t *testing.T) {
	t.Parallel()

	params := recipe.SearchParams{Ingredients: "zzz", Cuisine: "Thai"}

	r := baseRecipe("Coconut Curry")
	r.Description = "A fragrant Thai curry."

	require.Equal(t, 8, Score(r, params)-Score(baseRecipe("Coconut Curry"), params))
}

func TestScoreCompletenessBonuses(t *testing.T) {
	t.Parallel()

	params := recipe.SearchParams{Ingredients: "zzz"}
	plain := baseRecipe("Dish")

	withNutrition := plain
	withNutrition.Nutrition = recipe.Nutrition{Calories: 300}
	require.Equal(t, 2, Score(withNutrition, params)-Score(plain, params))

	withImage := plain
	withImage.ImageURL = "https://example.com/dish.jpg"
	require.Equal(t, 1, Score(withImage, params)-Score(plain, params))

	withSteps := plain
	withSteps.Steps = []string{"Chop.", "Cook.", "Serve."}
	require.Equal(t, 3, Score(withSteps, params)-Score(plain, params))

	// Placeholder steps do not count toward the step bonus.
	padded := plain
	padded.Steps = []string{"Chop.", "n/a", "see website"}
	require.Equal(t, 0, Score(padded, params)-Score(plain, params))
}

func TestRankOrdersByScoreThenName(t *testing.T) {
	t.Parallel()

	params := recipe.SearchParams{Ingredients: "garlic"}

	strong := baseRecipe("Garlic Chicken")
	strong.Ingredients = []string{"4 cloves garlic", "2 chicken breasts"}

	weakB := baseRecipe("Bravo Dish")
	weakA := baseRecipe("alpha dish")

	out := Rank([]recipe.Recipe{weakB, strong, weakA}, params, 5)
	require.Len(t, out, 3)
	require.Equal(t, "Garlic Chicken", out[0].Name)
	require.Equal(t, "alpha dish", out[1].Name)
	require.Equal(t, "Bravo Dish", out[2].Name)
}

func TestRankCapsAtTopN(t *testing.T) {
	t.Parallel()

	pool := []recipe.Recipe{
		baseRecipe("One"), baseRecipe("Two"), baseRecipe("Three"),
		baseRecipe("Four"), baseRecipe("Five"), baseRecipe("Six"),
		baseRecipe("Seven"),
	}

	out := Rank(pool, recipe.SearchParams{Ingredients: "zzz"}, 0)
	require.Len(t, out, DefaultTopN)
}

func TestRankStrictDropsNonPositiveScores(t *testing.T) {
	t.Parallel()

	params := recipe.SearchParams{
		Ingredients: "anchovy",
		Strictness:  recipe.StrictnessStrict,
	}

	miss := baseRecipe("Lemon Pasta")
	hit := baseRecipe("Anchovy Pasta")
	hit.Ingredients = []string{"4 anchovy fillets", "8 oz spaghetti"}

	out := Rank([]recipe.Recipe{miss, hit}, params, 5)
	require.Len(t, out, 1)
	require.Equal(t, "Anchovy Pasta", out[0].Name)

	params.Strictness = recipe.StrictnessFlexible
	out = Rank([]recipe.Recipe{miss, hit}, params, 5)
	require.Len(t, out, 2)
}
