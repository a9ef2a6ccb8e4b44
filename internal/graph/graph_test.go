package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestGraph builds a graph and fails the test on error.
func buildTestGraph(t *testing.T, nodes ...Node) *Graph {
	t.Helper()
	g, err := Build(nodes)
	require.NoError(t, err)
	return g
}

func TestBuild_Empty(t *testing.T) {
	g := buildTestGraph(t)

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Titles())
	assert.Nil(t, g.FindCycle())
	assert.Nil(t, g.Dangling())
}

func TestBuild_EdgesAndInDegree(t *testing.T) {
	g := buildTestGraph(t,
		Node{Title: "C", Dependencies: []string{"A", "B"}},
		Node{Title: "A"},
		Node{Title: "B", Dependencies: []string{"A"}},
	)

	assert.Equal(t, []string{"A", "B", "C"}, g.Titles())
	assert.Equal(t, []string{"B", "C"}, g.Successors("A"))
	assert.Equal(t, []string{"C"}, g.Successors("B"))
	assert.Nil(t, g.Successors("C"))

	assert.Equal(t, 0, g.InDegree("A"))
	assert.Equal(t, 1, g.InDegree("B"))
	assert.Equal(t, 2, g.InDegree("C"))
}

func TestBuild_DuplicateDependencyIsOneEdge(t *testing.T) {
	g := buildTestGraph(t,
		Node{Title: "A"},
		Node{Title: "B", Dependencies: []string{"A", "A", "A"}},
	)

	assert.Equal(t, 1, g.InDegree("B"), "repeated dependency entries must not inflate in-degree")
	assert.Equal(t, []string{"B"}, g.Successors("A"))
}

func TestBuild_DanglingDependencyIsRecordedNotCounted(t *testing.T) {
	g := buildTestGraph(t,
		Node{Title: "A", Dependencies: []string{"Z", "Z"}},
		Node{Title: "B", Dependencies: []string{"A", "Y"}},
	)

	assert.Equal(t, 0, g.InDegree("A"))
	assert.Equal(t, 1, g.InDegree("B"))
	assert.Equal(t, []Dangling{
		{Task: "A", Dependency: "Z"},
		{Task: "B", Dependency: "Y"},
	}, g.Dangling())
	assert.False(t, g.Contains("Z"))
}

func TestBuild_DuplicateTitleRejected(t *testing.T) {
	_, err := Build([]Node{{Title: "A"}, {Title: "B"}, {Title: "A"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTitle)
	var dup *DuplicateTitleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A", dup.Title)
}

func TestInDegrees_ReturnsCopy(t *testing.T) {
	g := buildTestGraph(t,
		Node{Title: "A"},
		Node{Title: "B", Dependencies: []string{"A"}},
	)

	degrees := g.InDegrees()
	degrees["B"] = 99

	assert.Equal(t, 1, g.InDegree("B"), "mutating the copy must not leak into the graph")
}

func TestSuccessors_ReturnsCopy(t *testing.T) {
	g := buildTestGraph(t,
		Node{Title: "A"},
		Node{Title: "B", Dependencies: []string{"A"}},
	)

	succ := g.Successors("A")
	succ[0] = "mutated"

	assert.Equal(t, []string{"B"}, g.Successors("A"))
}

func TestFindCycle(t *testing.T) {
	testCases := []struct {
		name  string
		nodes []Node
		want  []string
	}{
		{
			name:  "acyclic chain",
			nodes: []Node{{Title: "A"}, {Title: "B", Dependencies: []string{"A"}}},
			want:  nil,
		},
		{
			name:  "self loop",
			nodes: []Node{{Title: "A", Dependencies: []string{"A"}}},
			want:  []string{"A", "A"},
		},
		{
			name: "two node cycle",
			nodes: []Node{
				{Title: "A", Dependencies: []string{"B"}},
				{Title: "B", Dependencies: []string{"A"}},
			},
			want: []string{"A", "B", "A"},
		},
		{
			name: "three node cycle behind an acyclic prefix",
			nodes: []Node{
				{Title: "root"},
				{Title: "x", Dependencies: []string{"root", "z"}},
				{Title: "y", Dependencies: []string{"x"}},
				{Title: "z", Dependencies: []string{"y"}},
			},
			want: []string{"x", "y", "z", "x"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildTestGraph(t, tc.nodes...)
			assert.Equal(t, tc.want, g.FindCycle())
		})
	}
}

func TestFindCycle_Deterministic(t *testing.T) {
	forward := buildTestGraph(t,
		Node{Title: "A", Dependencies: []string{"C"}},
		Node{Title: "B", Dependencies: []string{"A"}},
		Node{Title: "C", Dependencies: []string{"B"}},
	)
	reversed := buildTestGraph(t,
		Node{Title: "C", Dependencies: []string{"B"}},
		Node{Title: "B", Dependencies: []string{"A"}},
		Node{Title: "A", Dependencies: []string{"C"}},
	)

	require.NotNil(t, forward.FindCycle())
	assert.Equal(t, forward.FindCycle(), reversed.FindCycle())
}
