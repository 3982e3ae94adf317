// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/swipeflix/internal/catalog"
)

var (
	// ErrSchema reports malformed input tables. Initialize returns it and no
	// Engine is created. The concrete error is a *catalog.SchemaError.
	ErrSchema = catalog.ErrSchema

	// ErrValidation reports a rejected request or swipe event. The concrete
	// error is a *ValidationError.
	ErrValidation = errors.New("validation error")

	// ErrNotFound reports a lookup of a title that is not in the catalog.
	ErrNotFound = errors.New("not found")
)

// ValidationError describes why a single input field was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
