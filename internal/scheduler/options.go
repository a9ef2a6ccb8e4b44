package scheduler

import "fmt"

// DanglingPolicy decides what happens to dependencies that name no task.
type DanglingPolicy int

const (
	// DanglingIgnore treats a dangling dependency as already satisfied.
	DanglingIgnore DanglingPolicy = iota
	// DanglingReject fails the call on the first dangling dependency.
	DanglingReject
)

func (p DanglingPolicy) String() string {
	switch p {
	case DanglingIgnore:
		return "ignore"
	case DanglingReject:
		return "reject"
	default:
		return fmt.Sprintf("DanglingPolicy(%d)", int(p))
	}
}

type options struct {
	dangling DanglingPolicy
}

// Option configures an Engine.
type Option func(*options)

// WithDanglingPolicy sets the dangling dependency policy. The default is
// DanglingIgnore.
func WithDanglingPolicy(p DanglingPolicy) Option {
	return func(o *options) { o.dangling = p }
}
