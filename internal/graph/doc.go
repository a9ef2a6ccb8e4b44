// Package graph builds the dependency graph the scheduler walks.
//
// # Why Graph Package Exists
//
// Scheduling needs a view of the task set that the raw descriptors do not
// give directly: who is blocked by whom, how many distinct blockers each task
// has, and which dependency names point at nothing. Graph derives that view
// once per scheduling call and then answers read-only queries about it.
//
// # Shape
//
// Nodes are task titles. An edge A -> B exists when B lists A as a
// dependency, meaning A must be emitted before B.
//
//	Kickoff ──► Write plan ──► Review
//	   │                        ▲
//	   └────────► Costs  ───────┘
//
// Dependency entries are normalised while the graph is built:
//   - Repeated entries for the same task collapse into a single edge, so the
//     in-degree of a task is the number of distinct blockers it has.
//   - Entries naming a title that is not part of the input are dangling. They
//     produce no edge and no in-degree; they are recorded so callers can
//     report or reject them.
//   - A task listing itself produces a self-loop, which is a cycle.
//
// # Determinism
//
// Titles() and Successors() return lexically sorted slices, and FindCycle
// walks nodes in that order. Two graphs built from the same descriptors in a
// different order answer every query identically.
//
// # Thread-Safety
//
// A Graph is immutable after Build and safe for concurrent reads. Callers that
// need mutable bookkeeping (for example an in-degree countdown) take a copy
// through InDegrees().
package graph
