package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: search.workers is S1_SEARCH_WORKERS
const EnvPrefix = "S1"

// Config is everything the CLI, HTTP API, gRPC server and Lambda read at startup
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Search   SearchConfig   `mapstructure:"search"`
	Cache    CacheConfig    `mapstructure:"cache"`
	API      APIConfig      `mapstructure:"api"`
	GRPC     GRPCConfig     `mapstructure:"grpc"`
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// envKeys lists every setting. AutomaticEnv only reaches keys viper already
// knows about, so each one is bound explicitly.
var envKeys = map[string][]string{
	"database": {"type", "url", "path", "host", "port", "user", "password", "name", "sslmode",
		"pool.max_open", "pool.max_idle", "pool.max_lifetime"},
	"catalog":  {"path", "dealers_path"},
	"search":   {"top_n", "max_mixers", "workers", "product_workers", "beam_factor", "resolver"},
	"cache":    {"enabled", "ttl", "cleanup_interval"},
	"api":      {"address", "request_timeout", "rate_limit.requests", "rate_limit.burst"},
	"grpc":     {"address", "dial_timeout"},
	"server":   {"pid_file", "shutdown_timeout"},
	"metrics":  {"enabled", "path"},
	"logging":  {"level", "format", "output", "file_path", "include_caller"},
}

// LoadConfig layers environment variables over the config file over defaults,
// then validates the result. An empty configPath searches ., ./configs and
// ~/.schedule1 for config.yaml; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	applyDatabaseURL(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".schedule1"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for section, keys := range envKeys {
		for _, key := range keys {
			_ = v.BindEnv(section + "." + key)
		}
	}

	// SetDefaults cannot tell an unset bool from false
	v.SetDefault("cache.enabled", true)
	v.SetDefault("metrics.enabled", true)
	return v
}

// applyDatabaseURL honors the conventional unprefixed DATABASE_URL, which
// implies postgres unless a type was chosen explicitly
func applyDatabaseURL(v *viper.Viper) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return
	}
	v.Set("database.url", url)
	if v.GetString("database.type") == "" {
		v.Set("database.type", "postgres")
	}
}

// LoadConfigOrDefault falls back to DefaultConfig when loading fails
func LoadConfigOrDefault(configPath string) *Config {
	if cfg, err := LoadConfig(configPath); err == nil {
		return cfg
	}
	return DefaultConfig()
}

func DefaultConfig() *Config {
	cfg := &Config{
		Cache:   CacheConfig{Enabled: true},
		Metrics: MetricsConfig{Enabled: true},
	}
	SetDefaults(cfg)
	return cfg
}

// MustLoadConfig panics when the configuration cannot be loaded
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
