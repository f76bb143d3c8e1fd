package sites

import (
	"net/url"
	"regexp"

	"github.com/mealscout/recipe-scout/internal/extract"
)

var (
	// Budget Bytes recipe URLs are a bare slug off the site root.
	budgetBytesInclude = regexp.MustCompile(`^https?://[^/]+/[a-z0-9-]+/$`)
	budgetBytesExclude = regexp.MustCompile(`/(category|tag|page|about|shop)/`)
)

// NewBudgetBytes builds the budgetbytes.com adapter (Tier 2). The site
// runs WP Recipe Maker, so selector fallbacks target its markup.
func NewBudgetBytes(cfg Config) *Site {
	cfg = cfg.normalize()
	return &Site{
		name: "budgetbytes",
		searchURL: func(query string) string {
			return "https://www.budgetbytes.com/?s=" + url.QueryEscape(query)
		},
		linkInclude:   budgetBytesInclude,
		linkExclude:   budgetBytesExclude,
		maxCandidates: cfg.MaxCandidates,
		fetcher:       cfg.Fetcher,
		logger:        cfg.Logger,
		selectors: fieldSelectors{
			name: append([]extract.Strategy{
				{Selector: "h1.entry-title"},
				{Selector: ".wprm-recipe-name"},
			}, commonNameSelectors...),
			description: append([]extract.Strategy{
				{Selector: ".wprm-recipe-summary"},
			}, commonDescriptionSelectors...),
			prepTime: []extract.Strategy{
				{Selector: ".wprm-recipe-prep-time-container .wprm-recipe-time"},
			},
			cookTime: []extract.Strategy{
				{Selector: ".wprm-recipe-cook-time-container .wprm-recipe-time"},
			},
			ingredients: []extract.Strategy{
				{Selector: ".wprm-recipe-ingredient"},
			},
			steps: []extract.Strategy{
				{Selector: ".wprm-recipe-instruction-text"},
			},
			image: commonImageSelectors,
		},
	}
}
