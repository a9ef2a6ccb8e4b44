package graph

// FindCycle returns one directed cycle as a closed path, for example
// ["A", "B", "C", "A"], or nil when the graph is acyclic. A self-loop is
// reported as ["A", "A"].
//
// The search is a depth-first walk that starts from the lexically smallest
// unvisited title and follows successors in lexical order, so the same graph
// always yields the same witness. It does not attempt to list every cycle.
func (g *Graph) FindCycle() []string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.titles))
	parent := make(map[string]string, len(g.titles))
	var cycle []string

	var visit func(u string) bool
	visit = func(u string) bool {
		color[u] = gray
		for _, v := range g.successors[u] {
			switch color[v] {
			case white:
				parent[v] = u
				if visit(v) {
					return true
				}
			case gray:
				// Back edge u -> v: walk parents from u up to v.
				var trail []string
				for cur := u; cur != v; cur = parent[cur] {
					trail = append(trail, cur)
				}
				cycle = make([]string, 0, len(trail)+2)
				cycle = append(cycle, v)
				for i := len(trail) - 1; i >= 0; i-- {
					cycle = append(cycle, trail[i])
				}
				cycle = append(cycle, v)
				return true
			}
		}
		color[u] = black
		return false
	}

	for _, title := range g.titles {
		if color[title] != white {
			continue
		}
		if visit(title) {
			return cycle
		}
	}
	return nil
}
