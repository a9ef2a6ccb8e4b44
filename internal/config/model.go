package config

import "strings"

// Model is the unified, format-agnostic representation of a task set.
type Model struct {
	Tasks []*Task
}

// Task is the format-agnostic representation of one task definition.
type Task struct {
	Title          string
	EstimatedHours float64
	DueDate        string
	DependsOn      []string

	// Source records where the task was defined, for diagnostics.
	Source string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Merge appends every task of other to m, preserving order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Tasks = append(m.Tasks, other.Tasks...)
}

// Len returns the number of tasks in the model.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Tasks)
}

// SupportsExtension reports whether loader handles files with ext. The
// comparison is case-insensitive.
func SupportsExtension(loader Loader, ext string) bool {
	for _, e := range loader.Extensions() {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}
