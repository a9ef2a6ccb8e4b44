package scheduler

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/vk/taskorder/internal/graph"
)

// Engine is the default Scheduler implementation.
type Engine struct {
	opts options
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(&e.opts)
	}
	return e
}

// Schedule is a convenience wrapper around New(opts...).Schedule(tasks).
func Schedule(tasks []Task, opts ...Option) Result {
	return New(opts...).Schedule(tasks)
}

// Validate runs a scheduling pass and returns its failure, if any.
func Validate(tasks []Task, opts ...Option) error {
	return Schedule(tasks, opts...).Err()
}

// Schedule implements the Scheduler interface.
func (e *Engine) Schedule(tasks []Task) Result {
	return Safely(func() Result { return e.schedule(tasks) })
}

// Safely runs fn and converts a panic into an internal-fault Result. Other
// Scheduler implementations use it to keep panics inside their boundary.
func Safely(fn func() Result) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failed(internalf("%v", r), nil)
		}
	}()
	return fn()
}

func (e *Engine) schedule(tasks []Task) Result {
	nodes := make([]graph.Node, len(tasks))
	hours := make(map[string]float64, len(tasks))
	for i, t := range tasks {
		nodes[i] = graph.Node{Title: t.Title, Dependencies: t.Dependencies}
		hours[t.Title] = t.EstimatedHours
	}

	g, err := graph.Build(nodes)
	if err != nil {
		var dup *graph.DuplicateTitleError
		if errors.As(err, &dup) {
			return failed(&Error{Kind: ErrDuplicateTitle, Msg: fmt.Sprintf("%q", dup.Title)}, nil)
		}
		return failed(internalf("build graph: %v", err), nil)
	}

	dangling := danglingRefs(g.Dangling())
	if len(dangling) > 0 && e.opts.dangling == DanglingReject {
		d := dangling[0]
		return failed(&Error{
			Kind: ErrDanglingDependency,
			Msg:  fmt.Sprintf("task %q depends on unknown task %q", d.Task, d.Dependency),
		}, dangling)
	}

	order := topoOrder(g, hours)
	if len(order) != len(tasks) {
		cycle := g.FindCycle()
		res := failed(cycleError(cycle), dangling)
		res.HasCycle = true
		res.Cycle = cycle
		return res
	}

	return Result{Order: order, Dangling: dangling}
}

// topoOrder is Kahn's algorithm with a (hours, title) min-heap frontier. It
// returns fewer titles than g.Len() when g contains a cycle.
func topoOrder(g *graph.Graph, hours map[string]float64) []string {
	inDegree := g.InDegrees()

	f := make(frontier, 0, g.Len())
	for _, title := range g.Titles() {
		if inDegree[title] == 0 {
			f = append(f, ready{title: title, hours: hours[title]})
		}
	}
	heap.Init(&f)

	order := make([]string, 0, g.Len())
	for f.Len() > 0 {
		next := f.pop()
		order = append(order, next.title)

		for _, succ := range g.Successors(next.title) {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				f.push(ready{title: succ, hours: hours[succ]})
			}
		}
	}
	return order
}

func failed(err *Error, dangling []DanglingRef) Result {
	return Result{
		Order:        []string{},
		ErrorMessage: err.message(),
		Dangling:     dangling,
		err:          err,
	}
}

func danglingRefs(in []graph.Dangling) []DanglingRef {
	if len(in) == 0 {
		return nil
	}
	out := make([]DanglingRef, len(in))
	for i, d := range in {
		out[i] = DanglingRef{Task: d.Task, Dependency: d.Dependency}
	}
	return out
}
