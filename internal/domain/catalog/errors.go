package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCatalog wraps every structural problem found while building a Catalog
var ErrInvalidCatalog = errors.New("invalid catalog")

// UnknownProductError indicates a product is neither a flat product nor a strain
type UnknownProductError struct {
	Product     string
	Suggestions []string
}

func (e *UnknownProductError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown product: %s", e.Product)
	}
	return fmt.Sprintf("unknown product: %s (did you mean %s?)", e.Product, strings.Join(e.Suggestions, ", "))
}

// NewUnknownProductError builds the error with suggestions drawn from the catalog
func (c *Catalog) NewUnknownProductError(product string) *UnknownProductError {
	return &UnknownProductError{
		Product:     product,
		Suggestions: c.SuggestProducts(product),
	}
}

// IsUnknownProduct reports whether err is (or wraps) an UnknownProductError
func IsUnknownProduct(err error) bool {
	var target *UnknownProductError
	return errors.As(err, &target)
}
