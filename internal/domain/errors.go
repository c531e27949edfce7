package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoProductionModel = errors.New("no production model for this name")
	ErrModelNotFound     = errors.New("model not found")
	ErrNotTrained        = errors.New("model is not trained")
	ErrInvalidInput      = errors.New("invalid input")
)

// SchemaError reports every expected column missing from a table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing columns: %s", strings.Join(e.Missing, ", "))
}

// ValidationError carries user-correctable input problems; the handler
// layer maps it to a 400 rather than a 500.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input data: %s", strings.Join(e.Problems, "; "))
}
