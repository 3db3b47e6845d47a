package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "schedule1.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "schedule1"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "schedule1"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Search defaults
	if cfg.Search.TopN == 0 {
		cfg.Search.TopN = 5
	}
	if cfg.Search.MaxMixers == 0 {
		cfg.Search.MaxMixers = 8
	}
	if cfg.Search.Workers == 0 {
		cfg.Search.Workers = 4
	}
	if cfg.Search.ProductWorkers == 0 {
		cfg.Search.ProductWorkers = 1
	}
	if cfg.Search.BeamFactor == 0 {
		cfg.Search.BeamFactor = 5
	}
	if cfg.Search.Resolver == "" {
		cfg.Search.Resolver = "replacements"
	}

	// Cache defaults
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 30 * time.Minute
	}
	if cfg.Cache.CleanupInterval == 0 {
		cfg.Cache.CleanupInterval = 10 * time.Minute
	}

	// API defaults
	if cfg.API.Address == "" {
		cfg.API.Address = "localhost:8080"
	}
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = 60 * time.Second
	}
	if cfg.API.RateLimit.Requests == 0 {
		cfg.API.RateLimit.Requests = 10
	}
	if cfg.API.RateLimit.Burst == 0 {
		cfg.API.RateLimit.Burst = 20
	}

	// gRPC defaults
	if cfg.GRPC.Address == "" {
		cfg.GRPC.Address = "localhost:50061"
	}
	if cfg.GRPC.DialTimeout == 0 {
		cfg.GRPC.DialTimeout = 10 * time.Second
	}

	// Server defaults
	if cfg.Server.PIDFile == "" {
		cfg.Server.PIDFile = "/tmp/schedule1.pid"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15 * time.Second
	}

	// Metrics defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}
