package scheduler

// Scheduler produces an execution order for a set of tasks.
//
// Implementations must be safe for concurrent use and must encode every
// outcome, including internal faults, in the returned Result rather than
// panicking.
type Scheduler interface {
	Schedule(tasks []Task) Result
}
