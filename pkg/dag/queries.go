package dag

import "slices"

// Dependencies returns a sorted copy of the IDs the given vertex points at,
// i.e. everything it directly depends on. Returns nil for an unknown vertex.
func (g *Graph[T]) Dependencies(id string) []string {
	vertex, ok := g.vertices[id]
	if !ok {
		return nil
	}
	dependencies := make([]string, len(vertex.Edges))
	copy(dependencies, vertex.Edges)
	slices.Sort(dependencies)
	return dependencies
}

// Dependents returns the sorted IDs of every vertex with an edge pointing at
// id. This is a reverse lookup over all vertices, O(V*E), which is fine for
// the small graphs this package is used with.
func (g *Graph[T]) Dependents(id string) []string {
	var dependents []string
	for _, vertex := range g.vertices {
		if slices.Contains(vertex.Edges, id) {
			dependents = append(dependents, vertex.ID)
		}
	}
	slices.Sort(dependents)
	return dependents
}
