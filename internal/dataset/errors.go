package dataset

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Load when the source does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset not found: %s", e.Path)
}

// IOError is returned by Load when the source exists but cannot be read or
// parsed.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read dataset %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// SchemaError lists the required columns a dataset is missing.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// PreconditionError is returned when an aggregate is requested from a
// dataset that has not been enriched.
type PreconditionError struct {
	Op string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s requires sentiment analysis to have run", e.Op)
}
