// Package main wires together the recipe search service binary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mealscout/recipe-scout/internal/api"
	"github.com/mealscout/recipe-scout/internal/cache"
	"github.com/mealscout/recipe-scout/internal/clock"
	"github.com/mealscout/recipe-scout/internal/config"
	"github.com/mealscout/recipe-scout/internal/fetch"
	"github.com/mealscout/recipe-scout/internal/logging"
	"github.com/mealscout/recipe-scout/internal/metrics"
	"github.com/mealscout/recipe-scout/internal/scrape"
	"github.com/mealscout/recipe-scout/internal/search"
	"github.com/mealscout/recipe-scout/internal/sites"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Init()
	clk := clock.NewSystem()

	breakers := fetch.NewBreakerRegistry(cfg.Breaker.FailureThreshold, cfg.BreakerCooldown(), clk)
	breakers.OnTransition(metrics.ObserveCircuitTransition)

	fetcher := fetch.New(fetch.Config{
		UserAgent:      cfg.Fetch.UserAgent,
		Timeout:        cfg.FetchTimeout(),
		MaxRetries:     cfg.Fetch.MaxRetries,
		BackoffInitial: cfg.BackoffInitial(),
		BackoffMax:     cfg.BackoffMax(),
	}, breakers, logger.Named("fetch"))

	siteCfg := sites.Config{
		MaxCandidates: cfg.Scrape.CandidatesPerSite,
		Fetcher:       fetcher,
		Logger:        logger.Named("sites"),
	}
	health := scrape.NewHealthTracker(cfg.Scrape.RunLogCap)
	orchestrator := scrape.New(
		sites.Tier1(siteCfg),
		sites.Tier2(siteCfg),
		scrape.Config{
			AdapterTimeout: cfg.AdapterTimeout(),
			Tier2Threshold: cfg.Scrape.Tier2Threshold,
		},
		health,
		clk,
		logger.Named("scrape"),
	)

	responses := cache.New(cfg.CacheTTL(), cfg.Cache.Capacity, clk)
	svc := search.New(orchestrator, responses, cfg.Ranking.TopN, clk, logger.Named("search"))

	apiServer := api.NewServer(svc, breakers, health, logger.Named("api"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
