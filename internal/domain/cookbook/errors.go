package cookbook

import "fmt"

// ErrRecipeNotFound indicates no saved recipe has the given id
type ErrRecipeNotFound struct {
	ID string
}

func (e *ErrRecipeNotFound) Error() string {
	return fmt.Sprintf("saved recipe not found: %s", e.ID)
}
