// Package tree wraps graphs as reusable units with declared typed
// boundaries.
//
// Build registers a named graph, runs a body function once to populate
// it through typed input and output declarations, and finishes with a
// readability layout pass. A built Tree is callable: Call places a
// single subgraph-reference node in the caller's graph and wraps each
// declared output in the matching socket variant.
//
// Library adds a reflection mode: an ordinary Go function whose
// parameters and results are socket variant pointers is introspected
// into a unit, registered under a name derived from the function's
// qualified identity, and memoized so repeated references share one
// graph.
package tree
