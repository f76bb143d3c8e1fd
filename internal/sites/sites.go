// Package sites hosts one adapter per external recipe source. Every
// adapter shares the same engine: discover candidate recipe links from
// the source's search page, then extract each candidate preferring
// embedded schema.org metadata over CSS selector fallbacks.
package sites

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/mealscout/recipe-scout/internal/extract"
	"github.com/mealscout/recipe-scout/internal/recipe"
)

// PageFetcher retrieves page text for a URL. Satisfied by fetch.Fetcher.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Adapter searches one external source. Search never returns an error:
// failures are folded into the ScraperResult.
type Adapter interface {
	Name() string
	Search(ctx context.Context, params recipe.SearchParams) recipe.ScraperResult
}

// fieldSelectors are the per-field fallback chains used when a page
// carries no JSON-LD. Order matters: first non-empty value wins.
type fieldSelectors struct {
	name        []extract.Strategy
	description []extract.Strategy
	prepTime    []extract.Strategy
	cookTime    []extract.Strategy
	ingredients []extract.Strategy
	steps       []extract.Strategy
	image       []extract.Strategy
}

// Site is the generic adapter engine, parameterized per source.
type Site struct {
	name          string
	searchURL     func(query string) string
	linkInclude   *regexp.Regexp
	linkExclude   *regexp.Regexp
	selectors     fieldSelectors
	maxCandidates int
	fetcher       PageFetcher
	logger        *zap.Logger
}

// Name returns the adapter's site name.
func (s *Site) Name() string { return s.name }

// Search discovers candidate recipe URLs for the query and extracts a
// recipe from each. Per-URL failures degrade to skipped entries; only a
// failed search-page fetch fails the whole result.
func (s *Site) Search(ctx context.Context, params recipe.SearchParams) recipe.ScraperResult {
	start := time.Now()
	result := recipe.ScraperResult{SiteName: s.name}

	query := strings.TrimSpace(params.Ingredients)
	if params.Cuisine != "" {
		query += " " + params.Cuisine
	}

	searchPage := s.searchURL(query)
	html, err := s.fetcher.Fetch(ctx, searchPage)
	if err != nil {
		result.Success = false
		result.Error = err.Error()
		result.Elapsed = time.Since(start)
		return result
	}

	candidates := s.discoverLinks(html, searchPage)
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			break
		}
		r := s.extractOne(ctx, candidate)
		if r == nil {
			continue
		}
		result.Recipes = append(result.Recipes, *r)
	}

	result.Success = true
	result.Elapsed = time.Since(start)
	return result
}

// discoverLinks pulls anchor targets off the search results page,
// keeping only URLs that look like single recipe pages on this site.
func (s *Site) discoverLinks(html, pageURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		s.logger.Warn("search page unparseable", zap.String("site", s.name), zap.Error(err))
		return nil
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return true
		}
		u, err := url.Parse(href)
		if err != nil {
			return true
		}
		abs := base.ResolveReference(u)
		abs.Fragment = ""
		if abs.Host != base.Host {
			return true
		}
		link := abs.String()
		if !s.linkInclude.MatchString(link) {
			return true
		}
		if s.linkExclude != nil && s.linkExclude.MatchString(link) {
			return true
		}
		if _, dup := seen[link]; dup {
			return true
		}
		seen[link] = struct{}{}
		out = append(out, link)
		return len(out) < s.maxCandidates
	})
	return out
}

// extractOne fetches and extracts a single candidate. Returns nil on
// any failure; extraction never aborts the adapter.
func (s *Site) extractOne(ctx context.Context, pageURL string) *recipe.Recipe {
	html, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		s.logger.Debug("candidate fetch failed",
			zap.String("site", s.name),
			zap.String("url", pageURL),
			zap.Error(err),
		)
		return nil
	}

	r := extract.RecipeFromJSONLD(html)
	if r == nil {
		r = s.recipeFromSelectors(html)
	}
	if r == nil {
		return nil
	}
	r.SourceURL = pageURL
	r.SourceSite = s.name
	return recipe.Validate(r)
}

// recipeFromSelectors is the markup-drift fallback: field-by-field
// selector chains over the raw document.
func (s *Site) recipeFromSelectors(html string) *recipe.Recipe {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	name := extract.FirstString(doc, s.selectors.name)
	if name == "" {
		return nil
	}
	return &recipe.Recipe{
		Name:        name,
		Description: extract.FirstString(doc, s.selectors.description),
		PrepTime:    extract.HumanDuration(extract.FirstString(doc, s.selectors.prepTime)),
		CookTime:    extract.HumanDuration(extract.FirstString(doc, s.selectors.cookTime)),
		Ingredients: extract.FirstList(doc, s.selectors.ingredients),
		Steps:       extract.FirstList(doc, s.selectors.steps),
		ImageURL:    extract.FirstString(doc, s.selectors.image),
	}
}

// Config carries the knobs shared by every adapter constructor.
type Config struct {
	MaxCandidates int
	Fetcher       PageFetcher
	Logger        *zap.Logger
}

func (c Config) normalize() Config {
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = 3
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Tier1 returns the always-run adapters, most reliable sources first.
func Tier1(cfg Config) []Adapter {
	return []Adapter{
		NewAllRecipes(cfg),
		NewFoodNetwork(cfg),
		NewSeriousEats(cfg),
	}
}

// Tier2 returns the fallback-only adapters.
func Tier2(cfg Config) []Adapter {
	return []Adapter{
		NewBBCGoodFood(cfg),
		NewBudgetBytes(cfg),
	}
}

// commonNameSelectors close out every site's name chain; they survive
// most redesigns.
var commonNameSelectors = []extract.Strategy{
	{Selector: `meta[property="og:title"]`, Attr: "content"},
	{Selector: "h1"},
}

var commonDescriptionSelectors = []extract.Strategy{
	{Selector: `meta[property="og:description"]`, Attr: "content"},
	{Selector: `meta[name="description"]`, Attr: "content"},
}

var commonImageSelectors = []extract.Strategy{
	{Selector: `meta[property="og:image"]`, Attr: "content"},
}
