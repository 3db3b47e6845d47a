package config

// SearchConfig holds recipe search defaults and tuning
type SearchConfig struct {
	// Recipes returned when a request does not say
	TopN int `mapstructure:"top_n" validate:"min=1,max=100"`

	// Longest mixer sequence considered when a request does not say
	MaxMixers int `mapstructure:"max_mixers" validate:"min=1,max=8"`

	// Goroutines evaluating candidates within one search (1 = sequential)
	Workers int `mapstructure:"workers" validate:"min=1"`

	// Products searched concurrently by the all-products search
	ProductWorkers int `mapstructure:"product_workers" validate:"min=1"`

	// Beam width multiplier over top_n
	BeamFactor int `mapstructure:"beam_factor" validate:"min=1"`

	// Effect resolution rules: replacements or interactions
	Resolver string `mapstructure:"resolver" validate:"required,oneof=replacements interactions"`
}
