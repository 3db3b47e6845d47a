package gamedata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kibahcorps/schedule1-go/internal/domain/catalog"
)

var validate = validator.New()

// LoadCatalog builds the catalog used by every command. An empty path returns the
// built-in tables; otherwise the file at path (.json, .yaml or .yml) is overlaid
// on them section by section.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	c, err := ParseCatalog(raw, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes raw catalog bytes in the format named by ext
func ParseCatalog(raw []byte, ext string) (*catalog.Catalog, error) {
	var (
		f   *catalogFile
		err error
	)
	switch strings.ToLower(ext) {
	case ".json":
		f, err = decodeJSON(raw)
	case ".yaml", ".yml":
		f, err = decodeYAML(raw)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (expected .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrInvalidCatalog, err)
	}

	return catalog.New(f.merge(catalog.DefaultData()))
}
