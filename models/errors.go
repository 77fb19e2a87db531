package models

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreUnavailable means the document store was never configured.
	ErrStoreUnavailable = errors.New("document store not available, check DATABASE_URL and DATABASE_NAME")

	// ErrInvalidID means an identifier string could not be parsed.
	ErrInvalidID = errors.New("invalid document id")

	// ErrNotFound means the id was well formed but matched nothing.
	ErrNotFound = errors.New("document not found")
)

// InvalidItemError names an ordered item id that does not resolve against
// the menu. The whole order is rejected before any write.
type InvalidItemError struct {
	ItemID string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item_id %s", e.ItemID)
}

// ValidationError reports a request body that fails schema constraints.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
