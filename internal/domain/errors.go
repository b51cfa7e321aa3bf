package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrUnexpectedArgs     = errors.New("unexpected positional arguments")
	ErrChangeMessageUnset = errors.New("CIRRUS_CHANGE_MESSAGE is unset in a pull request context")
	ErrNoIssues           = errors.New("no issue numbers to search for")
	ErrMalformedMatch     = errors.New("search output line is not in path:lineno:text form")
	ErrStaleSkips         = errors.New("skip or FIXME directives reference issues marked as fixed")
	ErrUnknownGitBackend  = errors.New("unknown git backend")
)

// ErrorKind classifies a fatal error for reporting and exit status.
type ErrorKind int

// Error kinds.
const (
	KindUsage ErrorKind = iota + 1
	KindConfiguration
	KindExternalTool
	KindInternalContract
	KindPolicyViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage error"
	case KindConfiguration:
		return "configuration error"
	case KindExternalTool:
		return "external tool error"
	case KindInternalContract:
		return "internal error"
	case KindPolicyViolation:
		return "policy violation"
	default:
		return "error"
	}
}

// Error is an error tagged with its kind.
type Error struct {
	Err  error
	Kind ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError tags err with kind. A nil err yields nil.
func NewError(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind attached to err, or 0 if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
