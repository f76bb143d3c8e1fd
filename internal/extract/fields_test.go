package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mealscout/recipe-scout/internal/recipe"
)

func TestIngredients(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"1 cup rice"}, Ingredients("1 cup rice"))
	require.Equal(t,
		[]string{"2 eggs", "1 tbsp soy sauce"},
		Ingredients([]any{"2 eggs", " 1 tbsp soy sauce "}),
	)
	require.Equal(t,
		[]string{"3 cloves garlic"},
		Ingredients([]any{map[string]any{"name": "3 cloves garlic"}}),
	)
	require.Nil(t, Ingredients(42))
	require.Nil(t, Ingredients(nil))
	require.Nil(t, Ingredients([]any{"", "   "}))
}

func TestInstructions(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"Mix everything."}, Instructions("Mix everything."))
	require.Equal(t,
		[]string{"Boil water.", "Add pasta."},
		Instructions([]any{
			map[string]any{"@type": "HowToStep", "text": "Boil water."},
			map[string]any{"@type": "HowToStep", "text": "Add pasta."},
		}),
	)

	sectioned := []any{map[string]any{
		"@type": "HowToSection",
		"name":  "Sauce",
		"itemListElement": []any{
			map[string]any{"@type": "HowToStep", "text": "Simmer tomatoes."},
		},
	}}
	require.Equal(t, []string{"Simmer tomatoes."}, Instructions(sectioned))

	require.Nil(t, Instructions(nil))
	require.Nil(t, Instructions(3.14))
}

func TestImage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://img.test/a.jpg", Image("https://img.test/a.jpg"))
	require.Equal(t, "https://img.test/b.jpg", Image(map[string]any{"url": "https://img.test/b.jpg"}))
	require.Equal(t, "https://img.test/c.jpg", Image([]any{"https://img.test/c.jpg", "x"}))
	require.Equal(t, "", Image(nil))
	require.Equal(t, "", Image(7))
}

func TestParseNutrition(t *testing.T) {
	t.Parallel()

	got := ParseNutrition(map[string]any{
		"calories":            "240 kcal",
		"proteinContent":      "12 g",
		"carbohydrateContent": "30 g",
		"fatContent":          "8 g",
	})
	require.Equal(t, recipe.Nutrition{Calories: 240, Protein: "12 g", Carbs: "30 g", Fat: "8 g"}, got)

	require.Equal(t, 515, ParseNutrition(map[string]any{"calories": 515.0}).Calories)
	require.Equal(t, recipe.Nutrition{}, ParseNutrition("not an object"))
	require.Equal(t, recipe.Nutrition{}, ParseNutrition(nil))
}
