package scheduler

// Task is a caller-supplied task descriptor.
//
// Title identifies the task within one scheduling request. EstimatedHours is
// used only to order tasks that become ready at the same time. DueDate is
// carried through untouched.
type Task struct {
	Title          string   `json:"title" yaml:"title"`
	EstimatedHours float64  `json:"estimatedHours" yaml:"estimatedHours"`
	DueDate        string   `json:"dueDate" yaml:"dueDate"`
	Dependencies   []string `json:"dependencies" yaml:"dependencies"`
}

// DanglingRef is a dependency that names a title absent from the input.
type DanglingRef struct {
	Task       string `json:"task"`
	Dependency string `json:"dependency"`
}

// Result is the outcome of one scheduling call.
type Result struct {
	// Order is the recommended execution order. It is never nil, and it is
	// empty whenever the call did not succeed.
	Order []string `json:"recommendedOrder"`

	// ErrorMessage is a human-readable description of a failure.
	ErrorMessage string `json:"errorMessage,omitempty"`

	// HasCycle is true when the dependencies contain a directed cycle.
	HasCycle bool `json:"hasCycle"`

	// Cycle is one cycle witness, e.g. ["A", "B", "A"], set with HasCycle.
	Cycle []string `json:"cycle,omitempty"`

	// Dangling lists dependency references that were ignored because they
	// name no task in the input.
	Dangling []DanglingRef `json:"dangling,omitempty"`

	err *Error
}

// OK reports whether the call produced a complete order.
func (r Result) OK() bool { return r.err == nil }

// Err returns the failure as a *Error, or nil on success.
func (r Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}
