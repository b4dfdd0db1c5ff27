package dag

// DFS visit states used during cycle detection.
const (
	unvisited uint8 = iota
	visiting
	visited
)

// Vertex is a node in the graph. It is identified by a string ID so that
// callers can freely choose an encoding scheme (e.g. an assembly name or
// "mcp:prometheus"). Edges store target IDs instead of references for easier
// management.
type Vertex[T any] struct {
	ID    string
	Value T
	Edges []string
}

// Graph is a directed graph over string-identified vertices, each carrying a
// payload value. It is intended to be acyclic; TopologicalSort reports any
// cycle it finds instead of assuming one cannot exist.
//
// The Graph is not thread-safe by itself; callers must synchronise if they
// mutate it concurrently.
type Graph[T any] struct {
	vertices map[string]*Vertex[T]
}

// SortResult contains both the sorted order and any detected cycle.
//
// SortedOrder lists vertices before the vertices they point at ("dependents
// first"). When HasCycle is set, SortedOrder is empty and CyclePath holds the
// reconstructed cycle, with the shared vertex repeated at both ends.
type SortResult struct {
	SortedOrder []string
	HasCycle    bool
	CyclePath   []string
}

// New returns an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{vertices: make(map[string]*Vertex[T])}
}

// AddVertex inserts a vertex with the given ID and value. If the ID is
// already present the call is a no-op and the existing payload is preserved.
func (g *Graph[T]) AddVertex(id string, value T) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex[T]{ID: id, Value: value}
}

// AddEdge adds a directed edge from -> to. The call is a silent no-op when
// either vertex does not exist or the edge is already present, so callers may
// re-declare edges freely.
func (g *Graph[T]) AddEdge(from, to string) {
	source, ok := g.vertices[from]
	if !ok {
		return
	}
	if _, ok := g.vertices[to]; !ok {
		return
	}
	for _, edge := range source.Edges {
		if edge == to {
			return
		}
	}
	source.Edges = append(source.Edges, to)
}

// Vertex returns the vertex with the given ID, or false if it does not exist.
func (g *Graph[T]) Vertex(id string) (*Vertex[T], bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// Value returns the payload stored for the given vertex ID.
func (g *Graph[T]) Value(id string) (T, bool) {
	if v, ok := g.vertices[id]; ok {
		return v.Value, true
	}
	var zero T
	return zero, false
}

// Len returns the number of vertices in the graph.
func (g *Graph[T]) Len() int {
	return len(g.vertices)
}

// TopologicalSort serializes the graph into a valid execution order.
//
// Cycle detection runs first (DFS with three-colour marking); if a cycle is
// found the result carries the reconstructed path and no order. Otherwise a
// Kahn in-degree pass produces the order. Tie-breaking among equally-ready
// vertices follows map iteration order and is unspecified; callers must not
// rely on a particular order among independent vertices.
func (g *Graph[T]) TopologicalSort() SortResult {
	result := SortResult{}

	result.HasCycle, result.CyclePath = g.detectCycleWithPath()
	if result.HasCycle {
		return result
	}

	inDegree := make(map[string]int, len(g.vertices))
	for id := range g.vertices {
		inDegree[id] = 0
	}
	for _, vertex := range g.vertices {
		for _, edge := range vertex.Edges {
			inDegree[edge]++
		}
	}

	var queue []string
	for id, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, id)
		}
	}

	emitted := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		result.SortedOrder = append(result.SortedOrder, id)
		emitted++

		for _, edge := range g.vertices[id].Edges {
			inDegree[edge]--
			if inDegree[edge] == 0 {
				queue = append(queue, edge)
			}
		}
	}

	// Consistency guard: the DFS pass above already rejected cyclic graphs,
	// so every vertex must have been emitted. If not, treat it as a cycle
	// and discard the partial order.
	if emitted != len(g.vertices) {
		result.HasCycle = true
		result.SortedOrder = nil
	}

	return result
}

// detectCycleWithPath tries a DFS from every unvisited vertex and returns the
// first cycle found together with its path.
func (g *Graph[T]) detectCycleWithPath() (bool, []string) {
	visitState := make(map[string]uint8, len(g.vertices))
	parent := make(map[string]string)

	for id := range g.vertices {
		if visitState[id] == unvisited {
			if found, path := g.detectCycle(id, visitState, parent); found {
				return true, path
			}
		}
	}
	return false, nil
}

// detectCycle performs the DFS traversal for a single root. An edge to a
// vertex currently marked visiting is a back-edge; the cycle is reconstructed
// by walking the parent chain from the current vertex back to the back-edge
// target, reversing it and closing the loop with the shared vertex.
func (g *Graph[T]) detectCycle(id string, visitState map[string]uint8, parent map[string]string) (bool, []string) {
	visitState[id] = visiting

	for _, neighbor := range g.vertices[id].Edges {
		switch visitState[neighbor] {
		case visiting:
			cycle := []string{neighbor}
			current := id
			for current != neighbor {
				cycle = append(cycle, current)
				current = parent[current]
			}
			cycle = append(cycle, neighbor)

			for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
				cycle[i], cycle[j] = cycle[j], cycle[i]
			}
			return true, cycle
		case unvisited:
			parent[neighbor] = id
			if found, path := g.detectCycle(neighbor, visitState, parent); found {
				return true, path
			}
		}
	}

	visitState[id] = visited
	return false, nil
}
