package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mealscout/recipe-scout/internal/clock"
	"github.com/mealscout/recipe-scout/internal/recipe"
)

func testResponse(name string) recipe.SearchResponse {
	return recipe.SearchResponse{
		Recipes: []recipe.Recipe{{Name: name}},
		Source:  recipe.SourceScraped,
	}
}

func TestGetHitWithinTTL(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(1000, 0))
	c := New(15*time.Minute, 10, clk)

	c.Set("k", testResponse("Garlic Chicken"))
	clk.Advance(14 * time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, "Garlic Chicken", got.Recipes[0].Name)
}

func TestGetMissAfterTTL(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(1000, 0))
	c := New(15*time.Minute, 10, clk)

	c.Set("k", testResponse("Garlic Chicken"))
	clk.Advance(15 * time.Minute)

	_, ok := c.Get("k")
	require.False(t, ok)
	require.Zero(t, c.Len())
}

func TestSetEvictsOldestAtCapacity(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(1000, 0))
	c := New(15*time.Minute, 3, clk)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), testResponse(fmt.Sprintf("r%d", i)))
	}
	c.Set("k3", testResponse("r3"))

	require.Equal(t, 3, c.Len())
	_, ok := c.Get("k0")
	require.False(t, ok, "oldest entry should have been evicted")
	for i := 1; i <= 3; i++ {
		_, ok := c.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok)
	}
}

func TestSetOverwriteDoesNotEvict(t *testing.T) {
	t.Parallel()

	clk := clock.NewManual(time.Unix(1000, 0))
	c := New(15*time.Minute, 2, clk)

	c.Set("a", testResponse("first"))
	c.Set("b", testResponse("second"))
	c.Set("a", testResponse("updated"))

	require.Equal(t, 2, c.Len())
	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, "updated", got.Recipes[0].Name)
	_, ok = c.Get("b")
	require.True(t, ok)
}

func TestKeyNormalization(t *testing.T) {
	t.Parallel()

	a := Key(recipe.SearchParams{Ingredients: "  Chicken Garlic ", Cuisine: "Thai"})
	b := Key(recipe.SearchParams{Ingredients: "chicken garlic", Cuisine: "thai"})
	require.Equal(t, a, b)

	c := Key(recipe.SearchParams{Ingredients: "chicken garlic", Cuisine: "thai", Strictness: recipe.StrictnessStrict})
	require.NotEqual(t, a, c)

	// Related terms do not affect the key.
	d := Key(recipe.SearchParams{Ingredients: "chicken garlic", Cuisine: "thai", RelatedTerms: []string{"thigh"}})
	require.Equal(t, a, d)
}
