// Package scheduler turns a set of task descriptors into a deterministic,
// dependency-respecting execution order.
//
// # Why Scheduler Exists
//
// Tasks in a project name the tasks they depend on. Before anything can be
// worked on, the caller needs one linear plan: every task exactly once, every
// dependency ahead of its dependents, and the same plan for the same input on
// every call. When no such plan exists because the dependencies loop back on
// themselves, the caller needs to know that instead of receiving a partial
// answer.
//
// # How It Works
//
// Schedule runs Kahn's algorithm over the graph built by package graph:
//  1. Build the dependency graph (duplicate entries collapse, dangling
//     references are ignored or rejected depending on DanglingPolicy).
//  2. Seed the frontier with every task that has no unresolved dependency.
//  3. Pop the frontier minimum, append it to the order, and release every
//     dependent whose last dependency was just emitted.
//  4. When the frontier is empty, either every task was emitted (success) or
//     the remainder sits on a cycle (failure).
//
// The frontier is a min-heap keyed on (EstimatedHours, Title): among tasks
// that are ready at the same moment, the shortest job goes first and the
// lexically smaller title breaks ties. That key fully determines the output.
//
// # Outcomes
//
// Schedule never panics and never returns an error value. Every outcome is a
// Result:
//   - Success: Order holds every title, HasCycle is false.
//   - Cycle: Order is empty, HasCycle is true, Cycle holds one witness path.
//   - Validation failure (duplicate title, or a dangling reference under
//     DanglingReject): Order is empty, ErrorMessage explains why.
//   - Internal fault: any panic during scheduling is recovered and reported
//     through ErrorMessage.
//
// Result.Err exposes the same outcome as a *Error for callers that prefer
// errors.Is over inspecting fields.
//
// # Concurrency
//
// Each call owns its graph, in-degree table and frontier. An Engine holds only
// immutable options, so a single Engine may serve any number of concurrent
// callers. Bounding input size or wall-clock time is the caller's job.
package scheduler
