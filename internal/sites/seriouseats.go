package sites

import (
	"net/url"
	"regexp"

	"github.com/mealscout/recipe-scout/internal/extract"
)

var (
	seriousEatsInclude = regexp.MustCompile(`-recipe(-\d+)?$`)
	seriousEatsExclude = regexp.MustCompile(`/(recipes|collections?|tags?|how-to)($|/)`)
)

// NewSeriousEats builds the seriouseats.com adapter.
func NewSeriousEats(cfg Config) *Site {
	cfg = cfg.normalize()
	return &Site{
		name: "seriouseats",
		searchURL: func(query string) string {
			return "https://www.seriouseats.com/search?q=" + url.QueryEscape(query)
		},
		linkInclude:   seriousEatsInclude,
		linkExclude:   seriousEatsExclude,
		maxCandidates: cfg.MaxCandidates,
		fetcher:       cfg.Fetcher,
		logger:        cfg.Logger,
		selectors: fieldSelectors{
			name: append([]extract.Strategy{
				{Selector: "h1.heading__title"},
			}, commonNameSelectors...),
			description: append([]extract.Strategy{
				{Selector: ".heading__subtitle"},
			}, commonDescriptionSelectors...),
			prepTime: []extract.Strategy{
				{Selector: ".prep-time .meta-text__data"},
			},
			cookTime: []extract.Strategy{
				{Selector: ".total-time .meta-text__data"},
			},
			ingredients: []extract.Strategy{
				{Selector: ".structured-ingredients__list-item"},
				{Selector: ".ingredient"},
			},
			steps: []extract.Strategy{
				{Selector: ".structured-project__steps li p"},
				{Selector: "#structured-project__steps_1-0 li"},
			},
			image: commonImageSelectors,
		},
	}
}
