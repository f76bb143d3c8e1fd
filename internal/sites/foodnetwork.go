package sites

import (
	"net/url"
	"regexp"

	"github.com/mealscout/recipe-scout/internal/extract"
)

var (
	foodNetworkInclude = regexp.MustCompile(`-recipe-\d+$`)
	foodNetworkExclude = regexp.MustCompile(`/(photos|packages|shows|videos)/`)
)

// NewFoodNetwork builds the foodnetwork.com adapter.
func NewFoodNetwork(cfg Config) *Site {
	cfg = cfg.normalize()
	return &Site{
		name: "foodnetwork",
		searchURL: func(query string) string {
			return "https://www.foodnetwork.com/search/" + url.PathEscape(query) + "-"
		},
		linkInclude:   foodNetworkInclude,
		linkExclude:   foodNetworkExclude,
		maxCandidates: cfg.MaxCandidates,
		fetcher:       cfg.Fetcher,
		logger:        cfg.Logger,
		selectors: fieldSelectors{
			name: append([]extract.Strategy{
				{Selector: "h1.o-AssetTitle__a-Headline"},
				{Selector: ".o-AssetTitle__a-HeadlineText"},
			}, commonNameSelectors...),
			description: commonDescriptionSelectors,
			prepTime: []extract.Strategy{
				{Selector: ".o-RecipeInfo__m-Time .o-RecipeInfo__a-Description"},
			},
			cookTime: []extract.Strategy{
				{Selector: ".o-RecipeInfo__m-Time dd:last-of-type"},
			},
			ingredients: []extract.Strategy{
				{Selector: ".o-Ingredients__a-Ingredient--CheckboxLabel"},
				{Selector: ".o-Ingredients__a-Ingredient"},
			},
			steps: []extract.Strategy{
				{Selector: ".o-Method__m-Step"},
				{Selector: ".o-Method__m-Body li"},
			},
			image: commonImageSelectors,
		},
	}
}
