// Package socket turns expression-shaped Go code into nodes and links
// in a host-owned graph.
//
// The building blocks are typed sockets: immutable handles to one
// output of one node, in five variants (Scalar, Vector3, Boolean,
// Geometry, ObjectRef). Arithmetic and domain methods on the variants
// all reduce to one primitive, AddLinkedNode, which places a node of a
// requested kind one layout layer right of its rightmost input and
// connects each argument in order with type checking. Literal
// arguments become slot defaults instead of links; nil arguments skip
// their slot.
//
// Every construction call derives its target graph from its socket
// arguments. Mixing sockets from two graphs fails with CrossGraphError,
// and a call with no socket argument fails with NoAnchorError, except
// through NewSourceNode which takes the graph explicitly.
package socket
