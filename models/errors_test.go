package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidItemError(t *testing.T) {
	err := &InvalidItemError{ItemID: "abc123"}
	if err.Error() != "invalid item_id abc123" {
		t.Errorf("message = %q", err.Error())
	}

	var target *InvalidItemError
	if !errors.As(fmt.Errorf("order rejected: %w", err), &target) {
		t.Error("InvalidItemError should survive wrapping")
	}
	if target.ItemID != "abc123" {
		t.Errorf("unwrapped item id = %q", target.ItemID)
	}
}

func TestSentinelErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("order xyz: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("ErrNotFound should survive wrapping")
	}

	wrapped = fmt.Errorf("%w: %q", ErrInvalidID, "zz")
	if !errors.Is(wrapped, ErrInvalidID) {
		t.Error("ErrInvalidID should survive wrapping")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("quantity must be >= 1, got %d", 0)
	if err.Error() != "quantity must be >= 1, got 0" {
		t.Errorf("message = %q", err.Error())
	}
}
