package config

import "time"

// GRPCConfig holds gRPC server and client configuration
type GRPCConfig struct {
	// Listen address for `serve`, dial address for `remote`
	Address string `mapstructure:"address" validate:"required,hostname_port"`

	// Timeout for establishing a client connection
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}
