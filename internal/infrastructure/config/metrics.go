package config

// MetricsConfig controls the Prometheus registry. When disabled the collectors
// still run but record into nothing and Path serves 404.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}
