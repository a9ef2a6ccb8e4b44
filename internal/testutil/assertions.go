package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/taskorder/internal/scheduler"
)

// AssertValidOrder checks that order lists every task exactly once and that
// every in-set dependency precedes its dependent.
func AssertValidOrder(t *testing.T, tasks []scheduler.Task, order []string) {
	t.Helper()

	require.Len(t, order, len(tasks), "order must contain every task exactly once")

	pos := make(map[string]int, len(order))
	for i, title := range order {
		_, dup := pos[title]
		require.False(t, dup, "title %q appears twice in the order", title)
		pos[title] = i
	}

	for _, task := range tasks {
		for _, dep := range task.Dependencies {
			depPos, inSet := pos[dep]
			if !inSet {
				continue
			}
			require.Less(t, depPos, pos[task.Title], "dependency %q must precede %q", dep, task.Title)
		}
	}
}
