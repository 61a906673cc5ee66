package catalog

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoscript/engine"
)

// SlotSpec is the fully parsed definition of one input or output slot.
type SlotSpec struct {
	// Name is the slot's name, taken from the HCL block label.
	Name string

	// Tag is the semantic socket type used for link compatibility.
	Tag engine.TypeTag

	// Literal is the slot's constant-carrying subtype. Output slots are
	// always LiteralNone.
	Literal engine.LiteralKind

	// Default is the slot's initial default value, cty.NilVal when the
	// manifest declares none.
	Default cty.Value
}

// AttrSpec defines one configuration attribute of a node kind, such as
// the chosen suboperation of a math node.
type AttrSpec struct {
	Name string

	// Options restricts string attributes to a closed set. Empty means
	// unrestricted.
	Options []string

	// Default is applied when the attribute was never set.
	Default cty.Value
}

// KindSpec is the complete definition of one node kind.
type KindSpec struct {
	Kind        string
	Description string

	Inputs  []SlotSpec
	Outputs []SlotSpec
	Attrs   []AttrSpec

	// Subgraph marks the kind whose slots mirror a bound subgraph's
	// boundary instead of a static slot list.
	Subgraph bool

	// Boundary marks the implicit graph boundary kinds: "input" for
	// the node exposing declared graph inputs, "output" for the node
	// receiving declared graph outputs.
	Boundary string

	// Width and Height override the engine's default layout size when
	// positive.
	Width  float64
	Height float64
}

// Attr returns the named attribute spec, if declared.
func (k *KindSpec) Attr(name string) (*AttrSpec, bool) {
	for i := range k.Attrs {
		if k.Attrs[i].Name == name {
			return &k.Attrs[i], true
		}
	}
	return nil, false
}

// Catalog is a validated set of node kinds addressed by name.
type Catalog struct {
	kinds map[string]*KindSpec
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{kinds: make(map[string]*KindSpec)}
}

// Kind looks up a kind definition by name.
func (c *Catalog) Kind(name string) (*KindSpec, bool) {
	k, ok := c.kinds[name]
	return k, ok
}

// Kinds returns all registered kind names, sorted for deterministic
// iteration.
func (c *Catalog) Kinds() []string {
	names := make([]string, 0, len(c.kinds))
	for name := range c.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add registers a kind after validating it. Re-registering a name is an
// error; manifests are a static contract, not a mutable namespace.
func (c *Catalog) Add(spec *KindSpec) error {
	if spec.Kind == "" {
		return fmt.Errorf("catalog: kind with empty name")
	}
	if _, exists := c.kinds[spec.Kind]; exists {
		return fmt.Errorf("catalog: duplicate kind %q", spec.Kind)
	}
	if err := validateKind(spec); err != nil {
		return err
	}
	c.kinds[spec.Kind] = spec
	return nil
}

// validateKind checks internal consistency of a kind definition.
func validateKind(spec *KindSpec) error {
	seen := make(map[string]struct{}, len(spec.Inputs))
	for _, in := range spec.Inputs {
		if _, dup := seen[in.Name]; dup {
			return fmt.Errorf("catalog: kind %q: duplicate input %q", spec.Kind, in.Name)
		}
		seen[in.Name] = struct{}{}
		if in.Default != cty.NilVal {
			if err := CheckLiteral(in.Literal, in.Default); err != nil {
				return fmt.Errorf("catalog: kind %q, input %q: %w", spec.Kind, in.Name, err)
			}
		}
	}
	seen = make(map[string]struct{}, len(spec.Outputs))
	for _, out := range spec.Outputs {
		if _, dup := seen[out.Name]; dup {
			return fmt.Errorf("catalog: kind %q: duplicate output %q", spec.Kind, out.Name)
		}
		seen[out.Name] = struct{}{}
	}
	seen = make(map[string]struct{}, len(spec.Attrs))
	for _, attr := range spec.Attrs {
		if _, dup := seen[attr.Name]; dup {
			return fmt.Errorf("catalog: kind %q: duplicate attr %q", spec.Kind, attr.Name)
		}
		seen[attr.Name] = struct{}{}
		if len(attr.Options) > 0 && attr.Default != cty.NilVal {
			if !attr.Default.Type().Equals(cty.String) {
				return fmt.Errorf("catalog: kind %q, attr %q: options require a string default", spec.Kind, attr.Name)
			}
			if !attrAllows(attr.Options, attr.Default.AsString()) {
				return fmt.Errorf("catalog: kind %q, attr %q: default %q not among options", spec.Kind, attr.Name, attr.Default.AsString())
			}
		}
	}
	return nil
}

// CheckAttrValue validates a value against an attribute's option set.
func (a *AttrSpec) CheckAttrValue(v cty.Value) error {
	if len(a.Options) == 0 {
		return nil
	}
	if !v.Type().Equals(cty.String) {
		return fmt.Errorf("attr %q: expected one of %v, got %s", a.Name, a.Options, v.Type().FriendlyName())
	}
	if !attrAllows(a.Options, v.AsString()) {
		return fmt.Errorf("attr %q: value %q not among options %v", a.Name, v.AsString(), a.Options)
	}
	return nil
}

func attrAllows(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// CheckLiteral verifies that a cty value can serve as a default for a
// slot of the given literal kind. Engines use it to validate SetDefault
// calls; the loader uses it for manifest defaults.
func CheckLiteral(kind engine.LiteralKind, v cty.Value) error {
	switch kind {
	case engine.LiteralFloat, engine.LiteralInt:
		if !v.Type().Equals(cty.Number) {
			return fmt.Errorf("default must be a number, got %s", v.Type().FriendlyName())
		}
	case engine.LiteralBool:
		if !v.Type().Equals(cty.Bool) {
			return fmt.Errorf("default must be a bool, got %s", v.Type().FriendlyName())
		}
	case engine.LiteralString:
		if !v.Type().Equals(cty.String) {
			return fmt.Errorf("default must be a string, got %s", v.Type().FriendlyName())
		}
	case engine.LiteralVector:
		if !v.Type().IsTupleType() && !v.Type().IsListType() {
			return fmt.Errorf("default must be a three-element list, got %s", v.Type().FriendlyName())
		}
		if v.LengthInt() != 3 {
			return fmt.Errorf("default must have exactly three elements, got %d", v.LengthInt())
		}
	default:
		return fmt.Errorf("slot carries no literal default")
	}
	return nil
}
