// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Breaker BreakerConfig `mapstructure:"breaker"`
	Scrape  ScrapeConfig  `mapstructure:"scrape"`
	Ranking RankingConfig `mapstructure:"ranking"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// FetchConfig configures outbound HTTP retry behavior.
type FetchConfig struct {
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
	MaxRetries       int    `mapstructure:"max_retries"`
	BackoffInitialMs int    `mapstructure:"backoff_initial_ms"`
	BackoffMaxMs     int    `mapstructure:"backoff_max_ms"`
	UserAgent        string `mapstructure:"user_agent"`
}

// BreakerConfig governs the per-origin circuit breakers.
type BreakerConfig struct {
	FailureThreshold int `mapstructure:"failure_threshold"`
	CooldownSeconds  int `mapstructure:"cooldown_seconds"`
}

// ScrapeConfig governs orchestrator fan-out behavior.
type ScrapeConfig struct {
	AdapterTimeoutSeconds int `mapstructure:"adapter_timeout_seconds"`
	Tier2Threshold        int `mapstructure:"tier2_threshold"`
	CandidatesPerSite     int `mapstructure:"candidates_per_site"`
	RunLogCap             int `mapstructure:"run_log_cap"`
}

// RankingConfig controls result sizing.
type RankingConfig struct {
	TopN int `mapstructure:"top_n"`
}

// CacheConfig controls the result cache.
type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
	Capacity   int `mapstructure:"capacity"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RECIPESCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("fetch.timeout_seconds", 10)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.backoff_initial_ms", 500)
	v.SetDefault("fetch.backoff_max_ms", 8000)
	v.SetDefault("fetch.user_agent", "recipescout-bot/1.0")
	v.SetDefault("breaker.failure_threshold", 3)
	v.SetDefault("breaker.cooldown_seconds", 300)
	v.SetDefault("scrape.adapter_timeout_seconds", 12)
	v.SetDefault("scrape.tier2_threshold", 3)
	v.SetDefault("scrape.candidates_per_site", 3)
	v.SetDefault("scrape.run_log_cap", 50)
	v.SetDefault("ranking.top_n", 5)
	v.SetDefault("cache.ttl_seconds", 900)
	v.SetDefault("cache.capacity", 100)
	v.SetDefault("logging.development", false)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be > 0")
	}
	if c.Fetch.MaxRetries < 0 {
		return fmt.Errorf("fetch.max_retries must be >= 0")
	}
	if c.Breaker.FailureThreshold <= 0 {
		return fmt.Errorf("breaker.failure_threshold must be > 0")
	}
	if c.Scrape.AdapterTimeoutSeconds <= 0 {
		return fmt.Errorf("scrape.adapter_timeout_seconds must be > 0")
	}
	if c.Scrape.CandidatesPerSite <= 0 {
		return fmt.Errorf("scrape.candidates_per_site must be > 0")
	}
	if c.Ranking.TopN <= 0 {
		return fmt.Errorf("ranking.top_n must be > 0")
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity must be > 0")
	}
	return nil
}

// FetchTimeout returns the per-request fetch timeout as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// AdapterTimeout returns the per-adapter hard deadline as a duration.
func (c Config) AdapterTimeout() time.Duration {
	return time.Duration(c.Scrape.AdapterTimeoutSeconds) * time.Second
}

// CacheTTL returns the result cache TTL as a duration.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// BackoffInitial returns the first retry backoff as a duration.
func (c Config) BackoffInitial() time.Duration {
	return time.Duration(c.Fetch.BackoffInitialMs) * time.Millisecond
}

// BackoffMax returns the retry backoff ceiling as a duration.
func (c Config) BackoffMax() time.Duration {
	return time.Duration(c.Fetch.BackoffMaxMs) * time.Millisecond
}

// BreakerCooldown returns the circuit cooldown window as a duration.
func (c Config) BreakerCooldown() time.Duration {
	return time.Duration(c.Breaker.CooldownSeconds) * time.Second
}
