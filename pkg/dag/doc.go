// Package dag provides a general-purpose directed graph used to order
// assembly initialization in assemblr.
//
// Each vertex is identified by a string ID and carries an arbitrary payload.
// Edges express "X depends on Y" relationships, and TopologicalSort
// serializes the graph into an order that respects them, reporting any cycle
// it finds together with a reconstructed cycle path.
//
// # Ordering caveat
//
// The order among vertices with no dependency relationship between them is
// unspecified: it follows Go map iteration and may change between runs.
// Callers that need a stable order must impose one themselves.
//
// # Thread safety
//
// Graph is not safe for concurrent mutation. The Assembler builds a fresh
// graph per assembly run while holding its own lock, so no synchronisation is
// needed here.
package dag
