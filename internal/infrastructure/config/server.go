package config

import "time"

// ServerConfig holds settings for the long-running `serve` process
type ServerConfig struct {
	// PID file enforcing a single server instance
	PIDFile string `mapstructure:"pid_file" validate:"required"`

	// Grace period for in-flight requests on shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
