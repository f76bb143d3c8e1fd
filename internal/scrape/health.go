package scrape

import (
	"sort"
	"sync"
	"time"

	"github.com/mealscout/recipe-scout/internal/recipe"
)

// adapterHealth accumulates rolling stats for one adapter.
type adapterHealth struct {
	runs         int64
	successes    int64
	totalRecipes int64
	totalLatency time.Duration
	lastError    string
}

// HealthTracker owns the rolling per-adapter metrics and the run-log
// ring. Safe for concurrent use.
type HealthTracker struct {
	mu       sync.Mutex
	adapters map[string]*adapterHealth
	runs     []recipe.RunLog
	runCap   int
}

// NewHealthTracker builds a tracker keeping at most runCap run logs.
func NewHealthTracker(runCap int) *HealthTracker {
	if runCap <= 0 {
		runCap = 50
	}
	return &HealthTracker{
		adapters: make(map[string]*adapterHealth),
		runCap:   runCap,
	}
}

// RecordResult folds one adapter execution into the rolling stats.
func (h *HealthTracker) RecordResult(res recipe.ScraperResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	a, ok := h.adapters[res.SiteName]
	if !ok {
		a = &adapterHealth{}
		h.adapters[res.SiteName] = a
	}
	a.runs++
	a.totalLatency += res.Elapsed
	a.totalRecipes += int64(len(res.Recipes))
	if res.Success {
		a.successes++
	} else {
		a.lastError = res.Error
	}
}

// RecordRun appends a run log, evicting the oldest past the cap.
func (h *HealthTracker) RecordRun(run recipe.RunLog) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.runs = append(h.runs, run)
	if len(h.runs) > h.runCap {
		h.runs = h.runs[len(h.runs)-h.runCap:]
	}
}

// AdapterStats returns the rolling stats, sorted by site name.
func (h *HealthTracker) AdapterStats() []recipe.AdapterStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]recipe.AdapterStats, 0, len(h.adapters))
	for name, a := range h.adapters {
		stats := recipe.AdapterStats{
			SiteName:  name,
			Runs:      a.runs,
			Successes: a.successes,
			LastError: a.lastError,
		}
		if a.runs > 0 {
			stats.SuccessRate = float64(a.successes) / float64(a.runs)
			stats.AvgRecipes = float64(a.totalRecipes) / float64(a.runs)
			stats.AvgLatency = a.totalLatency / time.Duration(a.runs)
		}
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SiteName < out[j].SiteName })
	return out
}

// RecentRuns returns up to n run logs, newest first.
func (h *HealthTracker) RecentRuns(n int) []recipe.RunLog {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 || n > len(h.runs) {
		n = len(h.runs)
	}
	out := make([]recipe.RunLog, 0, n)
	for i := len(h.runs) - 1; i >= len(h.runs)-n; i-- {
		out = append(out, h.runs[i])
	}
	return out
}
