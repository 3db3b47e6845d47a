package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// configValidator reports fields by their config key (search.top_n rather
// than Search.TopN) and adds the rules that span several database fields
func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
		validate.RegisterStructValidation(validateDatabase, DatabaseConfig{})
	})
	return validate
}

func validateDatabase(sl validator.StructLevel) {
	db := sl.Current().Interface().(DatabaseConfig)

	if db.Type == "postgres" && db.URL == "" && db.Host == "" {
		sl.ReportError(db.Host, "host", "Host", "required_without_url", "")
	}
	if db.Pool.MaxIdle > db.Pool.MaxOpen {
		sl.ReportError(db.Pool.MaxIdle, "pool.max_idle", "MaxIdle", "ltefield_max_open", "")
	}
}

// ValidateConfig checks cfg against its validate tags, listing every failing key
func ValidateConfig(cfg *Config) error {
	err := configValidator().Struct(cfg)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		// Namespace is "Config.search.top_n"
		_, key, _ := strings.Cut(fe.Namespace(), ".")
		lines[i] = fmt.Sprintf("%s failed validation: %s (value: '%v')", key, fe.Tag(), fe.Value())
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(lines, "\n  "))
}
