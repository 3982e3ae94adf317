// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

package catalog

import (
	"errors"
	"fmt"
)

// ErrSchema is matched by every *SchemaError.
var ErrSchema = errors.New("schema error")

// SchemaError describes malformed or missing input columns.
type SchemaError struct {
	// Source names the table being read ("ratings" or "items").
	Source string

	// Line is the 1-based input line, or 0 when the error is not line specific.
	Line int

	// Column is the column name that failed, if any.
	Column string

	// Reason is a short description of the problem.
	Reason string

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Source, e.Reason)
	if e.Column != "" {
		msg = fmt.Sprintf("%s: column %s: %s", e.Source, e.Column, e.Reason)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying parse error.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
