package sites

import (
	"net/url"
	"regexp"

	"github.com/mealscout/recipe-scout/internal/extract"
)

var (
	bbcGoodFoodInclude = regexp.MustCompile(`/recipes/[a-z0-9-]+$`)
	bbcGoodFoodExclude = regexp.MustCompile(`/recipes/(collection|category)/|/howto/`)
)

// NewBBCGoodFood builds the bbcgoodfood.com adapter (Tier 2).
func NewBBCGoodFood(cfg Config) *Site {
	cfg = cfg.normalize()
	return &Site{
		name: "bbcgoodfood",
		searchURL: func(query string) string {
			return "https://www.bbcgoodfood.com/search?q=" + url.QueryEscape(query)
		},
		linkInclude:   bbcGoodFoodInclude,
		linkExclude:   bbcGoodFoodExclude,
		maxCandidates: cfg.MaxCandidates,
		fetcher:       cfg.Fetcher,
		logger:        cfg.Logger,
		selectors: fieldSelectors{
			name: append([]extract.Strategy{
				{Selector: "h1.heading-1"},
			}, commonNameSelectors...),
			description: append([]extract.Strategy{
				{Selector: ".editor-content p"},
			}, commonDescriptionSelectors...),
			prepTime: []extract.Strategy{
				{Selector: ".recipe__cook-and-prep time"},
			},
			cookTime: []extract.Strategy{
				{Selector: ".recipe__cook-and-prep li:last-child time"},
			},
			ingredients: []extract.Strategy{
				{Selector: ".recipe__ingredients li"},
				{Selector: ".ingredients-list__item"},
			},
			steps: []extract.Strategy{
				{Selector: ".recipe__method-steps li p"},
				{Selector: ".method-steps__list-item"},
			},
			image: commonImageSelectors,
		},
	}
}
