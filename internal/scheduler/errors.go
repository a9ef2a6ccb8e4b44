package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

// CycleMessage is the ErrorMessage reported for cyclic input.
const CycleMessage = "Circular dependency detected. Cannot schedule tasks."

var (
	ErrCycle              = errors.New("circular dependency")
	ErrDuplicateTitle     = errors.New("duplicate task title")
	ErrDanglingDependency = errors.New("unknown dependency")
	ErrInternal           = errors.New("internal scheduling fault")
)

// Error describes why a scheduling call did not produce an order.
//
// Kind is one of the package sentinels and is reachable through errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// message is the ErrorMessage a Result carries for this error.
func (e *Error) message() string {
	if errors.Is(e.Kind, ErrCycle) {
		return CycleMessage
	}
	return "Scheduling failed: " + e.Error()
}

// IsValidation reports whether err is a failure caused by the input itself
// (cycle, duplicate title, rejected dangling reference) rather than an
// internal fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrCycle) ||
		errors.Is(err, ErrDuplicateTitle) ||
		errors.Is(err, ErrDanglingDependency)
}

func cycleError(path []string) *Error {
	return &Error{Kind: ErrCycle, Msg: strings.Join(path, " -> ")}
}

func internalf(format string, args ...any) *Error {
	return &Error{Kind: ErrInternal, Msg: fmt.Sprintf(format, args...)}
}
