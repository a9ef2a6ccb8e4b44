package scheduler

import (
	"cmp"
	"container/heap"
)

// ready is a frontier entry: a task whose dependencies have all been emitted.
type ready struct {
	title string
	hours float64
}

// before is the frontier ordering: shorter estimate first, then lexical title.
func (a ready) before(b ready) bool {
	if c := cmp.Compare(a.hours, b.hours); c != 0 {
		return c < 0
	}
	return a.title < b.title
}

// frontier is a min-heap of ready tasks.
type frontier []ready

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].before(f[j]) }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)        { *f = append(*f, x.(ready)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}

func (f *frontier) push(r ready) { heap.Push(f, r) }
func (f *frontier) pop() ready   { return heap.Pop(f).(ready) }
