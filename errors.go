package rubriclist

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownStatus         = errors.New("unknown rubric status")
	ErrUnknownModuleType     = errors.New("unknown module type")
	ErrUnsupportedModuleType = errors.New("unsupported module type")
	ErrMissingString         = errors.New("missing string")
	ErrUnknownLanguage       = errors.New("unknown language")
)

// ColumnError reports a single column that could not be formatted.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string { return e.Column + ": " + e.Err.Error() }

func (e *ColumnError) Unwrap() error { return e.Err }

// RowError reports a listing row with one or more failed columns. The row is
// still written; Index is its zero-based position in the listing.
type RowError struct {
	Index int
	Name  string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%q): %v", e.Index, e.Name, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// RowErrors collects every failed row of a listing.
type RowErrors []*RowError

func (e RowErrors) Error() string {
	msgs := make([]string, len(e))
	for i, re := range e {
		msgs[i] = re.Error()
	}
	return fmt.Sprintf("%d rows failed: %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual row errors to [errors.Is] and [errors.As].
func (e RowErrors) Unwrap() []error {
	out := make([]error, len(e))
	for i, re := range e {
		out[i] = re
	}
	return out
}
