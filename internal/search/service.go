// Package search is the top-level facade: cache lookup, in-flight
// deduplication, orchestrated scraping, ranking, and the demo fallback
// behind a single call.
package search

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mealscout/recipe-scout/internal/cache"
	"github.com/mealscout/recipe-scout/internal/clock"
	"github.com/mealscout/recipe-scout/internal/demo"
	"github.com/mealscout/recipe-scout/internal/metrics"
	"github.com/mealscout/recipe-scout/internal/ranking"
	"github.com/mealscout/recipe-scout/internal/recipe"
	"github.com/mealscout/recipe-scout/internal/scrape"
)

// Runner executes one orchestrated scrape. Satisfied by
// *scrape.Orchestrator.
type Runner interface {
	Run(ctx context.Context, params recipe.SearchParams) scrape.Outcome
}

// Service owns the per-instance search state. Constructed once and
// shared across requests; everything it holds is concurrency-safe.
type Service struct {
	runner Runner
	cache  *cache.Cache
	group  singleflight.Group
	topN   int
	clock  clock.Clock
	logger *zap.Logger
}

// New builds a Service.
func New(runner Runner, c *cache.Cache, topN int, clk clock.Clock, logger *zap.Logger) *Service {
	if topN <= 0 {
		topN = ranking.DefaultTopN
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		runner: runner,
		cache:  c,
		topN:   topN,
		clock:  clk,
		logger: logger,
	}
}

// Search serves one query. It never fails: a scrape that yields nothing
// degrades to the demo dataset. Concurrent identical queries share a
// single scrape via the in-flight group.
func (s *Service) Search(ctx context.Context, params recipe.SearchParams) recipe.SearchResponse {
	start := s.clock.Now()
	params = normalize(params)
	key := cache.Key(params)

	if resp, ok := s.cache.Get(key); ok {
		resp.Meta.FromCache = true
		metrics.ObserveSearch(string(resp.Source), true, s.clock.Now().Sub(start))
		s.logger.Debug("cache hit", zap.String("key", key))
		return resp
	}

	// The flight serves every joined caller, so it must not die with
	// whichever one happened to start it: detach from the first caller's
	// cancellation and let the orchestrator's per-adapter deadlines
	// bound the work instead.
	flightCtx := context.WithoutCancel(ctx)
	v, _, shared := s.group.Do(key, func() (interface{}, error) {
		// Recheck under the flight: a just-settled duplicate may have
		// populated the cache between our miss and here.
		if resp, ok := s.cache.Get(key); ok {
			resp.Meta.FromCache = true
			return resp, nil
		}
		return s.execute(flightCtx, params, key), nil
	})
	resp := v.(recipe.SearchResponse)

	metrics.ObserveSearch(string(resp.Source), resp.Meta.FromCache, s.clock.Now().Sub(start))
	if shared {
		s.logger.Debug("search shared with concurrent duplicate", zap.String("key", key))
	}
	return resp
}

func (s *Service) execute(ctx context.Context, params recipe.SearchParams, key string) recipe.SearchResponse {
	out := s.runner.Run(ctx, params)
	meta := recipe.SearchMeta{
		ScrapersUsed: out.ScrapersUsed,
		ScrapersDown: out.ScrapersDown,
		TotalScraped: out.TotalScraped,
	}

	ranked := ranking.Rank(out.Recipes, params, s.topN)
	if len(ranked) == 0 {
		// Nothing survived scraping, filtering, or strict ranking.
		// Serve the demo set, ranked flexibly so it can never be
		// emptied by the same strictness that got us here.
		flexible := params
		flexible.Strictness = recipe.StrictnessFlexible
		resp := recipe.SearchResponse{
			Recipes: ranking.Rank(demo.Recipes(), flexible, s.topN),
			Source:  recipe.SourceDemo,
			Meta:    meta,
		}
		s.cache.Set(key, resp)
		s.logger.Info("serving demo fallback",
			zap.String("query", params.Ingredients),
			zap.Strings("down", out.ScrapersDown),
		)
		return resp
	}

	resp := recipe.SearchResponse{
		Recipes: ranked,
		Source:  recipe.SourceScraped,
		Meta:    meta,
	}
	s.cache.Set(key, resp)
	return resp
}

// normalize trims free-text fields and defaults strictness so
// equivalent queries share one cache key.
func normalize(params recipe.SearchParams) recipe.SearchParams {
	params.Ingredients = strings.TrimSpace(params.Ingredients)
	params.TimeAvailable = strings.TrimSpace(params.TimeAvailable)
	params.Cuisine = strings.TrimSpace(params.Cuisine)
	if params.Strictness != recipe.StrictnessStrict {
		params.Strictness = recipe.StrictnessFlexible
	}
	return params
}
