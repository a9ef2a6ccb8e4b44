package scheduler

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(title string, hours float64, deps ...string) Task {
	return Task{Title: title, EstimatedHours: hours, Dependencies: deps}
}

// assertValidOrder checks completeness and dependency respect.
func assertValidOrder(t *testing.T, tasks []Task, order []string) {
	t.Helper()
	require.Len(t, order, len(tasks), "order must contain every task exactly once")

	pos := make(map[string]int, len(order))
	for i, title := range order {
		_, dup := pos[title]
		require.False(t, dup, "title %q emitted twice", title)
		pos[title] = i
	}
	for _, tk := range tasks {
		for _, dep := range tk.Dependencies {
			depPos, known := pos[dep]
			if !known {
				continue
			}
			assert.Less(t, depPos, pos[tk.Title], "%q must come before %q", dep, tk.Title)
		}
	}
}

func TestSchedule_Scenarios(t *testing.T) {
	testCases := []struct {
		name      string
		tasks     []Task
		wantOrder []string
		wantCycle bool
	}{
		{
			name:      "lexical tie-break after shared dependency",
			tasks:     []Task{task("A", 2), task("B", 1, "A"), task("C", 1, "A")},
			wantOrder: []string{"A", "B", "C"},
		},
		{
			name:      "two node cycle",
			tasks:     []Task{task("A", 1, "B"), task("B", 1, "A")},
			wantOrder: []string{},
			wantCycle: true,
		},
		{
			name:      "shorter duration first",
			tasks:     []Task{task("X", 5), task("Y", 1)},
			wantOrder: []string{"Y", "X"},
		},
		{
			name:      "dangling dependency ignored",
			tasks:     []Task{task("A", 1, "Z")},
			wantOrder: []string{"A"},
		},
		{
			name:      "empty input",
			tasks:     nil,
			wantOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Schedule(tc.tasks)

			if diff := cmp.Diff(tc.wantOrder, res.Order); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.wantCycle, res.HasCycle)
			if tc.wantCycle {
				assert.Equal(t, CycleMessage, res.ErrorMessage)
				assert.ErrorIs(t, res.Err(), ErrCycle)
			} else {
				assert.Empty(t, res.ErrorMessage)
				assert.NoError(t, res.Err())
				assert.True(t, res.OK())
			}
		})
	}
}

func TestSchedule_ShortestJobAmongReadyTasks(t *testing.T) {
	// "long" is ready first but "quick" and "mid" become ready only after
	// "setup"; ordering is always decided among currently ready tasks.
	tasks := []Task{
		task("setup", 3),
		task("long", 8),
		task("quick", 1, "setup"),
		task("mid", 4, "setup"),
	}

	res := Schedule(tasks)

	require.True(t, res.OK())
	assert.Equal(t, []string{"setup", "quick", "mid", "long"}, res.Order)
}

func TestSchedule_FractionalAndZeroDurations(t *testing.T) {
	tasks := []Task{task("b", 0.5), task("a", 0.5), task("z", 0), task("c", 0.25)}

	res := Schedule(tasks)

	assert.Equal(t, []string{"z", "c", "a", "b"}, res.Order)
}

func TestSchedule_TitlesCompareByteWise(t *testing.T) {
	tasks := []Task{task("b", 1), task("B", 1), task("a", 1), task("A", 1)}

	res := Schedule(tasks)

	assert.Equal(t, []string{"A", "B", "a", "b"}, res.Order)
}

func TestSchedule_SelfDependencyIsCycle(t *testing.T) {
	res := Schedule([]Task{task("free", 1), task("A", 1, "A")})

	assert.True(t, res.HasCycle)
	assert.Empty(t, res.Order)
	assert.Equal(t, []string{"A", "A"}, res.Cycle)
}

func TestSchedule_CycleAmongAcyclicTasksYieldsNoPartialOrder(t *testing.T) {
	tasks := []Task{
		task("a", 1),
		task("b", 1, "a"),
		task("c", 1, "b"),
		task("x", 1, "z"),
		task("y", 1, "x"),
		task("z", 1, "y"),
	}

	res := Schedule(tasks)

	require.True(t, res.HasCycle)
	assert.Empty(t, res.Order)
	assert.NotNil(t, res.Order, "failed results still carry an empty, non-nil order")
	assert.Equal(t, []string{"x", "y", "z", "x"}, res.Cycle)
	assert.Contains(t, res.Err().Error(), "x -> y -> z -> x")
}

func TestSchedule_DuplicateDependencyEntries(t *testing.T) {
	tasks := []Task{task("A", 1), task("B", 1, "A", "A", "A")}

	res := Schedule(tasks)

	require.True(t, res.OK(), "repeated dependency entries must not block the task")
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestSchedule_DanglingDependencies(t *testing.T) {
	tasks := []Task{task("A", 2, "ghost"), task("B", 1, "A", "phantom")}

	t.Run("ignored by default", func(t *testing.T) {
		res := Schedule(tasks)

		require.True(t, res.OK())
		assert.Equal(t, []string{"A", "B"}, res.Order)
		assert.Equal(t, []DanglingRef{
			{Task: "A", Dependency: "ghost"},
			{Task: "B", Dependency: "phantom"},
		}, res.Dangling)
	})

	t.Run("rejected on request", func(t *testing.T) {
		res := Schedule(tasks, WithDanglingPolicy(DanglingReject))

		assert.False(t, res.OK())
		assert.False(t, res.HasCycle)
		assert.Empty(t, res.Order)
		assert.ErrorIs(t, res.Err(), ErrDanglingDependency)
		assert.Equal(t, `Scheduling failed: unknown dependency: task "A" depends on unknown task "ghost"`, res.ErrorMessage)
		assert.True(t, IsValidation(res.Err()))
	})
}

func TestSchedule_DuplicateTitleRejected(t *testing.T) {
	assert.NotPanics(t, func() {
		res := Schedule([]Task{task("A", 1), task("A", 2)})

		assert.False(t, res.OK())
		assert.False(t, res.HasCycle)
		assert.Empty(t, res.Order)
		assert.ErrorIs(t, res.Err(), ErrDuplicateTitle)
		assert.Equal(t, `Scheduling failed: duplicate task title: "A"`, res.ErrorMessage)
	})
}

func TestSchedule_DueDateDoesNotAffectOrder(t *testing.T) {
	tasks := []Task{
		{Title: "late", EstimatedHours: 1, DueDate: "2020-01-01"},
		{Title: "early", EstimatedHours: 1, DueDate: "2030-01-01"},
	}

	res := Schedule(tasks)

	assert.Equal(t, []string{"early", "late"}, res.Order)
}

func TestSchedule_DeterministicAcrossInputPermutations(t *testing.T) {
	tasks := randomDAG(rand.New(rand.NewSource(7)), 60)
	want := Schedule(tasks)
	require.True(t, want.OK())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]Task(nil), tasks...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Schedule(shuffled)
		if diff := cmp.Diff(want.Order, got.Order); diff != "" {
			t.Fatalf("permutation %d changed the order (-want +got):\n%s", i, diff)
		}
	}
}

func TestSchedule_RandomDAGsRespectDependencies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		tasks := randomDAG(rng, 1+rng.Intn(40))

		res := Schedule(tasks)

		require.True(t, res.OK(), "random DAG %d reported %q", i, res.ErrorMessage)
		assertValidOrder(t, tasks, res.Order)
	}
}

func TestSchedule_RandomDAGWithBackEdgeIsCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tasks := randomDAG(rng, 30)
	// Close a loop: task-0 now depends on the last task, which transitively
	// depends on it through the chain added below.
	for i := 1; i < len(tasks); i++ {
		tasks[i].Dependencies = append(tasks[i].Dependencies, tasks[i-1].Title)
	}
	tasks[0].Dependencies = append(tasks[0].Dependencies, tasks[len(tasks)-1].Title)

	res := Schedule(tasks)

	assert.True(t, res.HasCycle)
	assert.Empty(t, res.Order)
	require.GreaterOrEqual(t, len(res.Cycle), 2)
	assert.Equal(t, res.Cycle[0], res.Cycle[len(res.Cycle)-1], "witness must be a closed path")
}

func TestSchedule_ConcurrentCallsAreIndependent(t *testing.T) {
	engine := New()
	tasks := randomDAG(rand.New(rand.NewSource(11)), 50)
	want := engine.Schedule(tasks).Order

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := engine.Schedule(tasks).Order
			if diff := cmp.Diff(want, got); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)

	for diff := range errs {
		t.Errorf("concurrent call diverged:\n%s", diff)
	}
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	tasks := []Task{task("B", 1, "A", "A"), task("A", 1)}
	snapshot := []Task{task("B", 1, "A", "A"), task("A", 1)}

	Schedule(tasks)

	assert.Equal(t, snapshot, tasks)
}

func TestSafely_RecoversPanic(t *testing.T) {
	res := Safely(func() Result { panic("boom") })

	assert.False(t, res.OK())
	assert.False(t, res.HasCycle)
	assert.Empty(t, res.Order)
	assert.ErrorIs(t, res.Err(), ErrInternal)
	assert.Equal(t, "Scheduling failed: internal scheduling fault: boom", res.ErrorMessage)
	assert.False(t, IsValidation(res.Err()))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]Task{task("A", 1), task("B", 1, "A")}))
	assert.ErrorIs(t, Validate([]Task{task("A", 1, "A")}), ErrCycle)
	assert.NoError(t, Validate([]Task{task("A", 1, "Z")}))
	assert.ErrorIs(t, Validate([]Task{task("A", 1, "Z")}, WithDanglingPolicy(DanglingReject)), ErrDanglingDependency)
}

func TestResult_JSONShape(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		data, err := json.Marshal(Schedule(nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"recommendedOrder":[],"hasCycle":false}`, string(data))
	})

	t.Run("cycle", func(t *testing.T) {
		data, err := json.Marshal(Schedule([]Task{task("A", 1, "B"), task("B", 1, "A")}))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"recommendedOrder": [],
			"hasCycle": true,
			"errorMessage": "Circular dependency detected. Cannot schedule tasks.",
			"cycle": ["A", "B", "A"]
		}`, string(data))
	})
}

func TestTask_JSONDecode(t *testing.T) {
	var got []Task
	err := json.Unmarshal([]byte(`[{"title":"A","estimatedHours":3,"dueDate":"2025-01-01","dependencies":["B"]}]`), &got)
	require.NoError(t, err)

	assert.Equal(t, []Task{{Title: "A", EstimatedHours: 3, DueDate: "2025-01-01", Dependencies: []string{"B"}}}, got)
}

// randomDAG returns n tasks where every dependency points at a lower index,
// so the result is always acyclic.
func randomDAG(rng *rand.Rand, n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{
			Title:          fmt.Sprintf("task-%03d", i),
			EstimatedHours: float64(rng.Intn(5)),
		}
		for j := 0; j < i; j++ {
			if rng.Intn(4) == 0 {
				tasks[i].Dependencies = append(tasks[i].Dependencies, tasks[j].Title)
			}
		}
	}
	return tasks
}
