package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const recipePage = `<!DOCTYPE html>
<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Recipe",
  "name": "Lemon Garlic Salmon",
  "description": "Weeknight salmon with a bright pan sauce.",
  "prepTime": "PT10M",
  "cookTime": "PT15M",
  "image": ["https://img.test/salmon.jpg"],
  "recipeIngredient": ["2 salmon fillets", "1 lemon", "3 cloves garlic"],
  "recipeInstructions": [
    {"@type": "HowToStep", "text": "Pat salmon dry and season."},
    {"@type": "HowToStep", "text": "Sear 4 minutes per side."}
  ],
  "nutrition": {"@type": "NutritionInformation", "calories": "380 kcal", "proteinContent": "34 g"}
}
</script>
</head><body></body></html>`

const graphPage = `<html><head>
<script type="application/ld+json">
{"@graph": [
  {"@type": "WebPage", "name": "ignored"},
  {"@type": ["Recipe", "Thing"], "name": "Miso Soup",
   "recipeIngredient": ["miso paste", "tofu"],
   "recipeInstructions": "Whisk miso into hot dashi.",
   "totalTime": "PT20M"}
]}
</script>
</head></html>`

const arrayPage = `<html><head>
<script type="application/ld+json">
[{"@type": "BreadcrumbList"},
 {"@type": "Recipe", "name": "Shakshuka",
  "ingredients": ["6 eggs", "1 can tomatoes"],
  "recipeInstructions": [{"@type": "HowToStep", "text": "Crack eggs into sauce."}]}]
</script>
</head></html>`

func TestRecipeFromJSONLD(t *testing.T) {
	t.Parallel()

	r := RecipeFromJSONLD(recipePage)
	require.NotNil(t, r)
	require.Equal(t, "Lemon Garlic Salmon", r.Name)
	require.Equal(t, "10 min", r.PrepTime)
	require.Equal(t, "15 min", r.CookTime)
	require.Len(t, r.Ingredients, 3)
	require.Len(t, r.Steps, 2)
	require.Equal(t, 380, r.Nutrition.Calories)
	require.Equal(t, "https://img.test/salmon.jpg", r.ImageURL)
}

func TestRecipeFromJSONLDGraph(t *testing.T) {
	t.Parallel()

	r := RecipeFromJSONLD(graphPage)
	require.NotNil(t, r)
	require.Equal(t, "Miso Soup", r.Name)
	// totalTime fills cook time when cookTime is absent.
	require.Equal(t, "20 min", r.CookTime)
	require.Equal(t, []string{"Whisk miso into hot dashi."}, r.Steps)
}

func TestRecipeFromJSONLDArray(t *testing.T) {
	t.Parallel()

	r := RecipeFromJSONLD(arrayPage)
	require.NotNil(t, r)
	require.Equal(t, "Shakshuka", r.Name)
	// Legacy "ingredients" key is honored.
	require.Equal(t, []string{"6 eggs", "1 can tomatoes"}, r.Ingredients)
}

func TestRecipeFromJSONLDDegradesToNil(t *testing.T) {
	t.Parallel()

	require.Nil(t, RecipeFromJSONLD("<html><body>no markup</body></html>"))
	require.Nil(t, RecipeFromJSONLD(`<script type="application/ld+json">{broken json</script>`))
	require.Nil(t, RecipeFromJSONLD(`<script type="application/ld+json">{"@type":"Article"}</script>`))
	require.Nil(t, RecipeFromJSONLD(`<script type="application/ld+json">{"@type":"Recipe"}</script>`))
}
