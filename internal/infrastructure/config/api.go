package config

import "time"

// APIConfig configures the JSON API served by `schedule1 serve`
type APIConfig struct {
	Address string `mapstructure:"address" validate:"required,hostname_port"`

	// Searches still running when the timeout fires are cancelled and answer 504
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"required"`

	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig is a token bucket shared by every /v1 route
type RateLimitConfig struct {
	Requests int `mapstructure:"requests" validate:"min=1"` // refill per second
	Burst    int `mapstructure:"burst" validate:"min=1"`
}
