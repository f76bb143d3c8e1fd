// Package scrape coordinates site adapters across priority tiers and
// reduces their results into a clean candidate pool.
package scrape

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealscout/recipe-scout/internal/clock"
	"github.com/mealscout/recipe-scout/internal/extract"
	"github.com/mealscout/recipe-scout/internal/metrics"
	"github.com/mealscout/recipe-scout/internal/recipe"
	"github.com/mealscout/recipe-scout/internal/sites"
)

// Config controls orchestrator behavior.
type Config struct {
	AdapterTimeout time.Duration
	Tier2Threshold int
}

// Outcome is the aggregate of one orchestrated scrape.
type Outcome struct {
	Recipes      []recipe.Recipe
	ScrapersUsed []string
	ScrapersDown []string
	TotalScraped int
}

// Orchestrator fans a search out over the adapter tiers. Tier 1 always
// runs; Tier 2 only when Tier 1 comes back thin.
type Orchestrator struct {
	tier1  []sites.Adapter
	tier2  []sites.Adapter
	cfg    Config
	health *HealthTracker
	clock  clock.Clock
	logger *zap.Logger
}

// New builds an Orchestrator.
func New(tier1, tier2 []sites.Adapter, cfg Config, health *HealthTracker, clk clock.Clock, logger *zap.Logger) *Orchestrator {
	if cfg.AdapterTimeout <= 0 {
		cfg.AdapterTimeout = 12 * time.Second
	}
	if cfg.Tier2Threshold <= 0 {
		cfg.Tier2Threshold = 3
	}
	if health == nil {
		health = NewHealthTracker(0)
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		tier1:  tier1,
		tier2:  tier2,
		cfg:    cfg,
		health: health,
		clock:  clk,
		logger: logger,
	}
}

// Health exposes the tracker for diagnostics.
func (o *Orchestrator) Health() *HealthTracker {
	return o.health
}

// Run executes the tiered scrape and reduces the results: dedupe by
// name, then the aggregate quality filter. A zero-recipe outcome is a
// valid outcome; the caller decides what to fall back to.
func (o *Orchestrator) Run(ctx context.Context, params recipe.SearchParams) Outcome {
	start := o.clock.Now()

	results := o.runTier(ctx, o.tier1, params)
	if countRecipes(results) < o.cfg.Tier2Threshold && len(o.tier2) > 0 {
		o.logger.Debug("tier 1 below threshold, engaging tier 2",
			zap.Int("tier1_recipes", countRecipes(results)),
		)
		results = append(results, o.runTier(ctx, o.tier2, params)...)
	}

	var outcome Outcome
	var pooled []recipe.Recipe
	for _, res := range results {
		if res.Success {
			outcome.ScrapersUsed = append(outcome.ScrapersUsed, res.SiteName)
		} else {
			outcome.ScrapersDown = append(outcome.ScrapersDown, res.SiteName)
		}
		pooled = append(pooled, res.Recipes...)
	}
	outcome.TotalScraped = len(pooled)
	outcome.Recipes = qualityFilter(dedupeByName(pooled))

	run := recipe.RunLog{
		ID:        uuid.NewString(),
		StartedAt: start,
		Elapsed:   o.clock.Now().Sub(start),
		Query:     params.Ingredients,
		Total:     len(outcome.Recipes),
	}
	for _, res := range results {
		run.Adapters = append(run.Adapters, recipe.AdapterRun{
			SiteName: res.SiteName,
			Recipes:  len(res.Recipes),
			Success:  res.Success,
			Error:    res.Error,
			Elapsed:  res.Elapsed,
		})
	}
	o.health.RecordRun(run)

	o.logger.Info("scrape complete",
		zap.String("query", params.Ingredients),
		zap.Int("scraped", outcome.TotalScraped),
		zap.Int("kept", len(outcome.Recipes)),
		zap.Strings("down", outcome.ScrapersDown),
	)
	return outcome
}

// runTier executes every adapter in the tier concurrently, each under
// its own deadline. A timed-out adapter yields a failed result; its
// context is cancelled so the underlying request actually aborts.
func (o *Orchestrator) runTier(ctx context.Context, tier []sites.Adapter, params recipe.SearchParams) []recipe.ScraperResult {
	results := make([]recipe.ScraperResult, len(tier))
	var wg sync.WaitGroup
	for i, adapter := range tier {
		wg.Add(1)
		go func(i int, adapter sites.Adapter) {
			defer wg.Done()
			results[i] = o.runAdapter(ctx, adapter, params)
		}(i, adapter)
	}
	wg.Wait()

	for _, res := range results {
		o.health.RecordResult(res)
		outcome := "success"
		if !res.Success {
			outcome = "failure"
		}
		metrics.ObserveAdapterRun(res.SiteName, outcome, len(res.Recipes), res.Elapsed)
	}
	return results
}

func (o *Orchestrator) runAdapter(ctx context.Context, adapter sites.Adapter, params recipe.SearchParams) recipe.ScraperResult {
	actx, cancel := context.WithTimeout(ctx, o.cfg.AdapterTimeout)
	defer cancel()

	done := make(chan recipe.ScraperResult, 1)
	go func() {
		done <- adapter.Search(actx, params)
	}()

	select {
	case res := <-done:
		return res
	case <-actx.Done():
		// The deferred cancel aborts the adapter's in-flight fetches;
		// terminal outcomes still reach the circuit breaker inside the
		// fetcher.
		return recipe.ScraperResult{
			SiteName: adapter.Name(),
			Success:  false,
			Error:    "adapter timed out: " + actx.Err().Error(),
			Elapsed:  o.cfg.AdapterTimeout,
		}
	}
}

// dedupeByName keeps the first occurrence of each case-insensitive,
// trimmed recipe name.
func dedupeByName(in []recipe.Recipe) []recipe.Recipe {
	seen := make(map[string]struct{}, len(in))
	var out []recipe.Recipe
	for _, r := range in {
		key := strings.ToLower(strings.TrimSpace(r.Name))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// qualityFilter re-applies the recipe gate at the aggregate level and
// adds the pool-wide rejections: collection-like names or URLs, recipes
// with neither nutrition nor a substantive description, recipes with no
// usable time, ingredient or nutrition signal at all.
func qualityFilter(in []recipe.Recipe) []recipe.Recipe {
	var out []recipe.Recipe
	for _, r := range in {
		if !recipe.Valid(r) {
			continue
		}
		if collectionURL(r.SourceURL) {
			continue
		}
		substantiveDesc := len(strings.TrimSpace(r.Description)) >= 30
		if !r.Nutrition.HasData() && !substantiveDesc {
			continue
		}
		hasTime := extract.DurationMinutes(r.PrepTime)+extract.DurationMinutes(r.CookTime) > 0
		if !hasTime && len(r.Ingredients) == 0 && !r.Nutrition.HasData() {
			continue
		}
		out = append(out, r)
	}
	return out
}

var collectionURLMarkers = []string{"/collection/", "/gallery/", "/roundup", "/best-", "-roundup"}

func collectionURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, marker := range collectionURLMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func countRecipes(results []recipe.ScraperResult) int {
	n := 0
	for _, res := range results {
		n += len(res.Recipes)
	}
	return n
}
