package engine

import (
	"github.com/zclconf/go-cty/cty"
)

// TypeTag identifies the semantic type of a socket as reported by the
// host engine. Tags are opaque to the compiler except for membership
// checks against a socket variant's compatibility set.
type TypeTag string

const (
	TagValue    TypeTag = "VALUE"
	TagInt      TypeTag = "INT"
	TagBoolean  TypeTag = "BOOLEAN"
	TagVector   TypeTag = "VECTOR"
	TagGeometry TypeTag = "GEOMETRY"
	TagObject   TypeTag = "OBJECT"
	TagString   TypeTag = "STRING"
	TagColor    TypeTag = "COLOR"
)

// LiteralKind is the concrete constant-carrying subtype of an input
// slot. It determines which Go literals may be folded into the slot's
// static default, independently of the slot's TypeTag.
type LiteralKind int

const (
	// LiteralNone marks slots that cannot carry a literal default
	// (geometry, object and color slots).
	LiteralNone LiteralKind = iota
	LiteralFloat
	LiteralInt
	LiteralBool
	LiteralString
	LiteralVector
)

// String returns the manifest keyword for the literal kind.
func (k LiteralKind) String() string {
	switch k {
	case LiteralFloat:
		return "float"
	case LiteralInt:
		return "int"
	case LiteralBool:
		return "bool"
	case LiteralString:
		return "string"
	case LiteralVector:
		return "vector"
	default:
		return "none"
	}
}

// SlotType describes one input or output slot of a node kind.
type SlotType struct {
	// Name is the slot's display name from the kind manifest.
	Name string
	// Tag is the semantic type reported for link compatibility checks.
	Tag TypeTag
	// Literal is the slot's constant-carrying subtype. Output slots
	// always report LiteralNone.
	Literal LiteralKind
}

// PortMeta carries the optional metadata attached to a declared graph
// boundary input or output.
type PortMeta struct {
	Tooltip          string
	Domain           string
	DefaultAttribute string
	// Default is the boundary port's default value, cty.NilVal when
	// unset. The value's type must agree with the port's literal kind.
	Default cty.Value
	Min     *float64
	Max     *float64
}

// Output is a reference to a specific output slot of a specific node.
type Output struct {
	Node  Node
	Index int
}

// Input is a reference to a specific input slot of a specific node.
type Input struct {
	Node  Node
	Index int
}

// Engine is the host's entry point: a namespace of graphs addressed by
// registered name. Graph is get-or-create; requesting the same name
// twice yields the same graph.
type Engine interface {
	Graph(name string) (Graph, error)
}

// Graph is one host-owned directed node/link structure. All mutation of
// the graph flows through this interface; the compiler holds no private
// copy and read-after-write is always consistent within a construction
// pass.
type Graph interface {
	Name() string

	// NewNode instantiates a node of the named kind with the kind's
	// declared slots. Unknown kinds are an error.
	NewNode(kind string) (Node, error)

	// Link connects an output slot to an input slot. Both ends must
	// belong to this graph. An input slot holds at most one incoming
	// link; relinking replaces the previous link.
	Link(from Output, to Input) error

	// DeclareInput adds a named, typed graph-level input and returns
	// the boundary output slot that exposes it inside the graph.
	DeclareInput(name string, tag TypeTag, meta PortMeta) (Output, error)

	// DeclareOutput adds a named, typed graph-level output and returns
	// the boundary input slot that final values are linked into.
	DeclareOutput(name string, tag TypeTag, meta PortMeta) (Input, error)

	// Inputs and Outputs report the declared boundary, in declaration
	// order.
	Inputs() []SlotType
	Outputs() []SlotType

	// Clear removes every node, link and boundary declaration,
	// returning the graph to its freshly created state.
	Clear() error

	// Nodes returns all nodes in creation order. Used by the layout
	// pass; the slice is a snapshot and safe to iterate.
	Nodes() []Node
}

// Node is one entry in a Graph. A node's kind never changes after
// creation; only its configuration attributes, slot defaults and layout
// position may.
type Node interface {
	Kind() string

	NumInputs() int
	NumOutputs() int

	// InputType and OutputType report slot types by index. An index
	// beyond the declared arity is an error.
	InputType(i int) (SlotType, error)
	OutputType(i int) (SlotType, error)

	// Input and Output build slot references for linking.
	Input(i int) (Input, error)
	Output(i int) (Output, error)

	// SetDefault stores a literal default on an input slot. The value
	// must match the slot's literal kind.
	SetDefault(i int, v cty.Value) error

	// SetAttr sets a configuration attribute (for example the chosen
	// suboperation of a math node). Attr reads one back; the second
	// return is false when the attribute was never set and the kind
	// declares no default for it.
	SetAttr(name string, v cty.Value) error
	Attr(name string) (cty.Value, bool)

	// BindSubgraph points a subgraph-reference node at another graph,
	// mirroring that graph's declared boundary as this node's slots.
	// Only valid on the subgraph-reference kind.
	BindSubgraph(sub Graph) error

	SetPosition(x, y float64)
	Position() (x, y float64)

	// Bounds reports the node's layout rectangle for overlap checks.
	Bounds() (x, y, w, h float64)
}
