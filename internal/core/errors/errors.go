// Package errors defines the run-failure taxonomy shared by every stage of
// the pipeline. Stages return a *RunError instead of terminating the process;
// only the entry point translates the kind into an exit status.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a run failure. The string values appear in log output and
// are stable identifiers, not display text.
type Kind string

const (
	KindSourceNotFound  Kind = "source_not_found"
	KindMalformedSource Kind = "malformed_source"
	KindSchemaViolation Kind = "schema_violation"
	KindInvalidValue    Kind = "invalid_value"
)

// Exit statuses, one per kind. The contract only requires non-zero; distinct
// codes let the workflow runner tell the failure classes apart.
const (
	ExitOK              = 0
	ExitInternal        = 1
	ExitSourceNotFound  = 2
	ExitMalformedSource = 3
	ExitSchemaViolation = 4
	ExitInvalidValue    = 5
)

// RunError is a terminal, classified pipeline failure. None of the kinds are
// retried internally; the run aborts at the failing stage with no partial
// output.
type RunError struct {
	Kind    Kind
	Stage   string // load, validate, aggregate, serialize
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *RunError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// New builds a RunError with a formatted message and no wrapped cause.
func New(kind Kind, stage, format string, args ...interface{}) *RunError {
	return &RunError{Kind: kind, Stage: stage, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a RunError around an underlying cause.
func Wrap(kind Kind, stage string, err error, format string, args ...interface{}) *RunError {
	return &RunError{Kind: kind, Stage: stage, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the failure kind from err, or "" when err carries no
// RunError in its chain.
func KindOf(err error) Kind {
	var re *RunError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// ExitCode maps an error to the process exit status. nil maps to 0; an
// unclassified error maps to the generic failure code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch KindOf(err) {
	case KindSourceNotFound:
		return ExitSourceNotFound
	case KindMalformedSource:
		return ExitMalformedSource
	case KindSchemaViolation:
		return ExitSchemaViolation
	case KindInvalidValue:
		return ExitInvalidValue
	default:
		return ExitInternal
	}
}
