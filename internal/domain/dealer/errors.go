package dealer

import "fmt"

// ErrDealerNotFound indicates no dealer carries the requested name
type ErrDealerNotFound struct {
	Name string
}

func (e *ErrDealerNotFound) Error() string {
	return fmt.Sprintf("dealer not found: %s", e.Name)
}

// ErrInvalidTransaction indicates a transaction with non-positive quantity or negative price
type ErrInvalidTransaction struct {
	Reason string
}

func (e *ErrInvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction: %s", e.Reason)
}
