// Package engine defines the capability contract between the geoscript
// compiler and the host node-graph engine.
//
// The compiler never owns a graph. It mutates host-owned graphs through
// the small set of operations declared here: create a node of a named
// kind, link two sockets, set a literal default on an input slot, and
// declare named boundary inputs/outputs on a graph. The host reports,
// per node kind, the ordered input and output slot types; the compiler
// performs all type checking against those reports.
//
// The reference implementation lives in the inmem package. A production
// host (an actual node-graph editor) implements these interfaces and
// gets the whole expression DSL for free.
package engine
