// Package inmem is the reference implementation of the engine
// contract: named graphs, catalog-backed nodes, links, boundary
// declarations and layout positions, all held in process memory.
//
// It exists for two reasons. Tests of the compiler core need a host to
// build against, and tooling (the geoscript CLI) needs a host whose
// graphs it can inspect and dump. The dump format is the same HCL
// dialect the kind manifests use, emitted with hclwrite.
//
// The engine's graph registry is safe for concurrent get-or-create,
// matching the shared-resource discipline of unit names. Individual
// graphs are not synchronized: construction of one graph is a single
// synchronous pass, and interleaving two passes over one graph is a
// caller error.
package inmem
