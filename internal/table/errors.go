package table

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound indicates a lookup by a name the table does not have.
var ErrColumnNotFound = errors.New("column not found")

// FormatError indicates file content that could not be parsed as tabular data.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// DegenerateColumnError indicates a numeric column with zero variance, for
// which standardization is undefined. Surfaced instead of emitting NaN/Inf.
type DegenerateColumnError struct {
	Column string
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("column %q is constant: standardization undefined (zero variance)", e.Column)
}
