package runtype

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeInvalidFormat = "invalid_format"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeRefinement    = "refinement"
	CodeParseError    = "parse_error"
	CodeCustom        = "custom"
)

// ValidationError records a single rejection produced by a decode call.
type ValidationError struct {
	// Value is the raw value that was rejected (or the decoded value for
	// refinement failures).
	Value any
	// Context is the location trail at the moment of failure.
	Context Context
	// Message is an optional custom message. When set, reporters use it verbatim.
	Message string
	// Code is one of the codes listed above.
	Code string
}

// Pointer returns the JSON Pointer of the failing location.
func (e ValidationError) Pointer() string { return e.Context.Pointer() }

// Expected returns the name of the codec active at the deepest context entry.
func (e ValidationError) Expected() string {
	if last, ok := e.Context.Last(); ok {
		return last.Name
	}
	return ""
}

// Errors is an ordered collection of validation errors that implements error.
type Errors []ValidationError

// Error summarizes the first few errors.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(errs)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := errs[i]
		// e.g. invalid_type at /path (expected string)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Pointer())
		if exp := it.Expected(); exp != "" {
			fmt.Fprintf(b, " (expected %s)", exp)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendErrors appends errors to the destination, initializing the slice when
// needed.
func AppendErrors(dst Errors, more ...ValidationError) Errors {
	if dst == nil {
		dst = make(Errors, 0, len(more))
	}
	return append(dst, more...)
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
