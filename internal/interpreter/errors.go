package interpreter

import "fmt"

// FailureKind classifies interpretation failures. All kinds are recoverable:
// the caller downgrades to keyword-only matching instead of failing the
// request.
type FailureKind string

const (
	FailureUnavailable FailureKind = "unavailable"
	FailureTimeout     FailureKind = "timeout"
	FailureMalformed   FailureKind = "malformed_response"
)

// Error is the typed failure returned by an Interpreter.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("interpreter: %s", e.Kind)
	}
	return fmt.Sprintf("interpreter: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an interpreter error. Unknown error
// types are treated as unavailable, the most conservative degradation.
func KindOf(err error) FailureKind {
	if ierr, ok := err.(*Error); ok {
		return ierr.Kind
	}
	return FailureUnavailable
}

func unavailable(err error) *Error {
	return &Error{Kind: FailureUnavailable, Err: err}
}

func timeout(err error) *Error {
	return &Error{Kind: FailureTimeout, Err: err}
}

func malformed(err error) *Error {
	return &Error{Kind: FailureMalformed, Err: err}
}
