package config

// CatalogConfig points at optional game data overrides
type CatalogConfig struct {
	// Path to a JSON or YAML catalog; empty uses the built-in tables
	Path string `mapstructure:"path" validate:"omitempty,file"`

	// Path to a dealers JSON file ({"dealers": [...]}); empty uses the built-in dealers
	DealersPath string `mapstructure:"dealers_path" validate:"omitempty,file"`
}
