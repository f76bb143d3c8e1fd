package sites

import (
	"net/url"
	"regexp"

	"github.com/mealscout/recipe-scout/internal/extract"
)

var (
	allRecipesInclude = regexp.MustCompile(`/recipe/\d+`)
	allRecipesExclude = regexp.MustCompile(`/(recipes|gallery|article|collection)/`)
)

// NewAllRecipes builds the allrecipes.com adapter. Recipe pages carry
// reliable JSON-LD; the selector chains only matter when that breaks.
func NewAllRecipes(cfg Config) *Site {
	cfg = cfg.normalize()
	return &Site{
		name: "allrecipes",
		searchURL: func(query string) string {
			return "https://www.allrecipes.com/search?q=" + url.QueryEscape(query)
		},
		linkInclude:   allRecipesInclude,
		linkExclude:   allRecipesExclude,
		maxCandidates: cfg.MaxCandidates,
		fetcher:       cfg.Fetcher,
		logger:        cfg.Logger,
		selectors: fieldSelectors{
			name: append([]extract.Strategy{
				{Selector: "h1.article-heading"},
				{Selector: "h1#article-heading_1-0"},
			}, commonNameSelectors...),
			description: append([]extract.Strategy{
				{Selector: "p.article-subheading"},
			}, commonDescriptionSelectors...),
			prepTime: []extract.Strategy{
				{Selector: ".mm-recipes-details__label:contains('Prep Time:') + .mm-recipes-details__value"},
				{Selector: ".mntl-recipe-details__value"},
			},
			cookTime: []extract.Strategy{
				{Selector: ".mm-recipes-details__label:contains('Cook Time:') + .mm-recipes-details__value"},
			},
			ingredients: []extract.Strategy{
				{Selector: ".mm-recipes-structured-ingredients__list-item"},
				{Selector: ".mntl-structured-ingredients__list-item"},
				{Selector: "[data-ingredient-name]"},
			},
			steps: []extract.Strategy{
				{Selector: ".mm-recipes-steps__content li p"},
				{Selector: ".recipe__steps-content li"},
				{Selector: ".mntl-sc-block-group--OL li p"},
			},
			image: commonImageSelectors,
		},
	}
}
