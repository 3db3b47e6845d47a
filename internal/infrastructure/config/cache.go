package config

import "time"

// CacheConfig controls memoization of search results
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Lifetime of a cached search result
	TTL time.Duration `mapstructure:"ttl" validate:"min=0"`

	// Interval between expired entry sweeps
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"min=0"`
}
