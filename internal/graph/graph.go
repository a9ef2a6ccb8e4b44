package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateTitle is returned by Build when two nodes share a title.
var ErrDuplicateTitle = errors.New("duplicate title")

// DuplicateTitleError names the title that appeared twice. It matches
// ErrDuplicateTitle under errors.Is.
type DuplicateTitleError struct {
	Title string
}

func (e *DuplicateTitleError) Error() string {
	return fmt.Sprintf("%s %q", ErrDuplicateTitle, e.Title)
}

func (e *DuplicateTitleError) Is(target error) bool { return target == ErrDuplicateTitle }

// Node is the minimal input Build needs: a title and the titles it depends on.
type Node struct {
	Title        string
	Dependencies []string
}

// Dangling is a dependency reference that names no node in the graph.
type Dangling struct {
	Task       string
	Dependency string
}

// Graph is an immutable dependency graph over a set of task titles.
type Graph struct {
	titles     []string            // sorted
	present    map[string]struct{} // node set
	successors map[string][]string // title -> titles that depend on it, sorted
	inDegree   map[string]int      // title -> distinct in-graph dependencies
	dangling   []Dangling          // in input order
}

// Build constructs a Graph from the given nodes.
//
// Titles must be pairwise distinct; a repeated title is rejected with an
// *DuplicateTitleError. Dependency lists are deduplicated per node
// and dangling references are recorded rather than rejected.
func Build(nodes []Node) (*Graph, error) {
	g := &Graph{
		titles:     make([]string, 0, len(nodes)),
		present:    make(map[string]struct{}, len(nodes)),
		successors: make(map[string][]string),
		inDegree:   make(map[string]int, len(nodes)),
	}

	for _, n := range nodes {
		if g.Contains(n.Title) {
			return nil, &DuplicateTitleError{Title: n.Title}
		}
		g.present[n.Title] = struct{}{}
		g.inDegree[n.Title] = 0
		g.titles = append(g.titles, n.Title)
	}
	sort.Strings(g.titles)

	for _, n := range nodes {
		seen := make(map[string]struct{}, len(n.Dependencies))
		for _, dep := range n.Dependencies {
			if _, dup := seen[dep]; dup {
				continue
			}
			seen[dep] = struct{}{}

			if !g.Contains(dep) {
				g.dangling = append(g.dangling, Dangling{Task: n.Title, Dependency: dep})
				continue
			}
			g.successors[dep] = append(g.successors[dep], n.Title)
			g.inDegree[n.Title]++
		}
	}

	for title := range g.successors {
		sort.Strings(g.successors[title])
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.titles) }

// Contains reports whether title is a node of the graph.
func (g *Graph) Contains(title string) bool {
	_, ok := g.present[title]
	return ok
}

// Titles returns every node title in lexical order.
func (g *Graph) Titles() []string {
	out := make([]string, len(g.titles))
	copy(out, g.titles)
	return out
}

// Successors returns the titles that depend directly on title, in lexical
// order. It returns nil for unknown titles and for nodes nothing depends on.
func (g *Graph) Successors(title string) []string {
	succ := g.successors[title]
	if len(succ) == 0 {
		return nil
	}
	out := make([]string, len(succ))
	copy(out, succ)
	return out
}

// InDegree returns the number of distinct in-graph dependencies of title.
func (g *Graph) InDegree(title string) int {
	return g.inDegree[title]
}

// InDegrees returns a fresh copy of the in-degree table, suitable for
// destructive countdown by a topological walk.
func (g *Graph) InDegrees() map[string]int {
	out := make(map[string]int, len(g.inDegree))
	for title, d := range g.inDegree {
		out[title] = d
	}
	return out
}

// Dangling returns the dependency references that named no node, in the order
// they were encountered.
func (g *Graph) Dangling() []Dangling {
	if len(g.dangling) == 0 {
		return nil
	}
	out := make([]Dangling, len(g.dangling))
	copy(out, g.dangling)
	return out
}
