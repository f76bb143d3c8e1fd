package sites

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mealscout/recipe-scout/internal/recipe"
)

// fakeFetcher serves canned page text keyed by URL.
type fakeFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()
	page, ok := f.pages[url]
	if !ok {
		return "", errors.New("fetch failed: " + url)
	}
	return page, nil
}

const searchPageHTML = `<html><body>
<a href="https://www.allrecipes.com/recipe/123/garlic-chicken/">Garlic Chicken</a>
<a href="/recipe/456/lemon-pasta/">Lemon Pasta</a>
<a href="https://www.allrecipes.com/recipe/123/garlic-chicken/">duplicate</a>
<a href="https://www.allrecipes.com/recipes/dinner/">category page</a>
<a href="https://www.allrecipes.com/article/how-to-boil-water/">article</a>
<a href="https://other.example/recipe/789/offsite/">offsite</a>
<a href="/recipe/777/extra-beyond-cap/">Extra</a>
</body></html>`

func jsonLDPage(name string) string {
	return fmt.Sprintf(`<html><head><script type="application/ld+json">
{"@type":"Recipe","name":%q,
 "recipeIngredient":["2 chicken breasts","4 cloves garlic"],
 "recipeInstructions":[{"@type":"HowToStep","text":"Cook it through."}],
 "prepTime":"PT10M","cookTime":"PT20M"}
</script></head><body></body></html>`, name)
}

const selectorOnlyPage = `<html><head><title>x</title></head><body>
<h1 class="article-heading">Lemon Pasta</h1>
<ul>
<li class="mm-recipes-structured-ingredients__list-item">8 oz spaghetti</li>
<li class="mm-recipes-structured-ingredients__list-item">1 lemon</li>
</ul>
<div class="mm-recipes-steps__content"><ol><li><p>Boil pasta, toss with lemon.</p></li></ol></div>
</body></html>`

func newTestAdapter(pages map[string]string) (*Site, *fakeFetcher) {
	f := &fakeFetcher{pages: pages}
	site := NewAllRecipes(Config{MaxCandidates: 2, Fetcher: f})
	return site, f
}

func searchKey() string {
	return "https://www.allrecipes.com/search?q=chicken+garlic"
}

func TestSearchExtractsCandidates(t *testing.T) {
	t.Parallel()

	site, f := newTestAdapter(map[string]string{
		searchKey(): searchPageHTML,
		"https://www.allrecipes.com/recipe/123/garlic-chicken/": jsonLDPage("Garlic Chicken"),
		"https://www.allrecipes.com/recipe/456/lemon-pasta/":    selectorOnlyPage,
	})

	res := site.Search(context.Background(), recipe.SearchParams{Ingredients: "chicken garlic"})
	require.True(t, res.Success)
	require.Empty(t, res.Error)
	require.Len(t, res.Recipes, 2)

	require.Equal(t, "Garlic Chicken", res.Recipes[0].Name)
	require.Equal(t, "10 min", res.Recipes[0].PrepTime)
	require.Equal(t, "allrecipes", res.Recipes[0].SourceSite)
	require.Equal(t, "https://www.allrecipes.com/recipe/123/garlic-chicken/", res.Recipes[0].SourceURL)

	// Second candidate had no JSON-LD; selector fallback carried it.
	require.Equal(t, "Lemon Pasta", res.Recipes[1].Name)
	require.Equal(t, []string{"8 oz spaghetti", "1 lemon"}, res.Recipes[1].Ingredients)

	// Candidate cap of 2: the third recipe link was never fetched.
	require.Len(t, f.calls, 3)
}

func TestSearchPartialExtractionStillSucceeds(t *testing.T) {
	t.Parallel()

	site, _ := newTestAdapter(map[string]string{
		searchKey(): searchPageHTML,
		"https://www.allrecipes.com/recipe/123/garlic-chicken/": jsonLDPage("Garlic Chicken"),
		// recipe/456 missing: its fetch fails, entry skipped.
	})

	res := site.Search(context.Background(), recipe.SearchParams{Ingredients: "chicken garlic"})
	require.True(t, res.Success)
	require.Len(t, res.Recipes, 1)
}

func TestSearchPageFailureFailsResult(t *testing.T) {
	t.Parallel()

	site, _ := newTestAdapter(map[string]string{})

	res := site.Search(context.Background(), recipe.SearchParams{Ingredients: "chicken garlic"})
	require.False(t, res.Success)
	require.NotEmpty(t, res.Error)
	require.Empty(t, res.Recipes)
}

func TestSearchInvalidExtractionsDropped(t *testing.T) {
	t.Parallel()

	// A collection-style name fails validation even with good markup.
	site, _ := newTestAdapter(map[string]string{
		searchKey(): searchPageHTML,
		"https://www.allrecipes.com/recipe/123/garlic-chicken/": jsonLDPage("30 Best Chicken Dinners"),
		"https://www.allrecipes.com/recipe/456/lemon-pasta/":    `<html><body>nothing here</body></html>`,
	})

	res := site.Search(context.Background(), recipe.SearchParams{Ingredients: "chicken garlic"})
	require.True(t, res.Success)
	require.Empty(t, res.Recipes)
}

func TestSearchAppendsCuisineToQuery(t *testing.T) {
	t.Parallel()

	f := &fakeFetcher{pages: map[string]string{}}
	site := NewAllRecipes(Config{Fetcher: f})
	site.Search(context.Background(), recipe.SearchParams{Ingredients: "rice", Cuisine: "thai"})

	require.Len(t, f.calls, 1)
	require.Equal(t, "https://www.allrecipes.com/search?q=rice+thai", f.calls[0])
}

func TestTierComposition(t *testing.T) {
	t.Parallel()

	cfg := Config{Fetcher: &fakeFetcher{}}
	tier1 := Tier1(cfg)
	tier2 := Tier2(cfg)
	require.Len(t, tier1, 3)
	require.Len(t, tier2, 2)

	seen := map[string]bool{}
	for _, a := range append(tier1, tier2...) {
		require.NotEmpty(t, a.Name())
		require.False(t, seen[a.Name()], "duplicate adapter name %s", a.Name())
		seen[a.Name()] = true
	}
}
