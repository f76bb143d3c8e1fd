// Package recipe defines core types shared across subsystems.
package recipe

import "time"

// Nutrition holds the per-serving nutrition facts a source exposes.
// Calories is numeric; the macros keep whatever unit the source used.
type Nutrition struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein,omitempty"`
	Carbs    string `json:"carbs,omitempty"`
	Fat      string `json:"fat,omitempty"`
}

// HasData reports whether any nutrition field carries a value.
func (n Nutrition) HasData() bool {
	return n.Calories > 0 || n.Protein != "" || n.Carbs != "" || n.Fat != ""
}

// Recipe is the canonical extraction result from any source page.
type Recipe struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PrepTime    string    `json:"prep_time,omitempty"`
	CookTime    string    `json:"cook_time,omitempty"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Nutrition   Nutrition `json:"nutrition"`
	ImageURL    string    `json:"image_url,omitempty"`
	SourceURL   string    `json:"source_url,omitempty"`
	SourceSite  string    `json:"source_site,omitempty"`
}

// Strictness controls whether zero-scoring recipes survive ranking.
type Strictness string

// Strictness values accepted in search requests.
const (
	StrictnessStrict   Strictness = "strict"
	StrictnessFlexible Strictness = "flexible"
)

// SearchParams captures a structured recipe search. Ingredients is free
// text and required; everything else is optional and may have been filled
// in by an upstream query-enhancement step.
type SearchParams struct {
	Ingredients   string     `json:"ingredients"`
	TimeAvailable string     `json:"time_available,omitempty"`
	Cuisine       string     `json:"cuisine,omitempty"`
	Strictness    Strictness `json:"strictness,omitempty"`
	RelatedTerms  []string   `json:"related_terms,omitempty"`
}

// ScraperResult is the unit of work a site adapter returns. Adapters
// never fail a whole search: partial extraction still reports Success.
type ScraperResult struct {
	SiteName string        `json:"site_name"`
	Recipes  []Recipe      `json:"recipes"`
	Success  bool          `json:"success"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ms"`
}

// RunLog records one orchestrated search: which adapters ran and how
// each fared. Write-once; readers get copies.
type RunLog struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ms"`
	Query     string        `json:"query"`
	Adapters  []AdapterRun  `json:"adapters"`
	Total     int           `json:"total_recipes"`
}

// AdapterRun is one adapter's slice of a RunLog.
type AdapterRun struct {
	SiteName string        `json:"site_name"`
	Recipes  int           `json:"recipes"`
	Success  bool          `json:"success"`
	Error    string        `json:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed_ms"`
}

// AdapterStats is the rolling health view of one adapter.
type AdapterStats struct {
	SiteName    string        `json:"site_name"`
	Runs        int64         `json:"runs"`
	Successes   int64         `json:"successes"`
	SuccessRate float64       `json:"success_rate"`
	AvgRecipes  float64       `json:"avg_recipes"`
	AvgLatency  time.Duration `json:"avg_latency_ms"`
	LastError   string        `json:"last_error,omitempty"`
}

// CircuitSnapshot is a read-only view of one origin's breaker state.
type CircuitSnapshot struct {
	Origin      string    `json:"origin"`
	State       string    `json:"state"`
	Failures    int       `json:"failures"`
	LastFailure time.Time `json:"last_failure,omitempty"`
}

// ResultSource labels where a response's recipes came from.
type ResultSource string

// Response sources.
const (
	SourceScraped ResultSource = "scraped"
	SourceDemo    ResultSource = "demo"
)

// SearchMeta describes how a search response was produced.
type SearchMeta struct {
	ScrapersUsed []string `json:"scrapers_used"`
	ScrapersDown []string `json:"scrapers_down"`
	TotalScraped int      `json:"total_scraped"`
	FromCache    bool     `json:"from_cache"`
}

// SearchResponse is the caller-facing result shape. It is always
// populated; a failed scrape degrades to demo-sourced recipes, never to
// an error.
type SearchResponse struct {
	Recipes []Recipe     `json:"recipes"`
	Source  ResultSource `json:"source"`
	Meta    SearchMeta   `json:"meta"`
}
