package inmem

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Dump renders the graph in the same HCL dialect the kind manifests
// use, for inspection and golden-file comparison. Boundary nodes are
// included so link endpoints always resolve.
func (g *Graph) Dump() []byte {
	file := hclwrite.NewEmptyFile()
	body := file.Body().AppendNewBlock("graph", []string{g.name}).Body()

	for _, p := range g.inputs {
		pb := body.AppendNewBlock("input", []string{p.slot.Name}).Body()
		pb.SetAttributeValue("type", cty.StringVal(string(p.slot.Tag)))
		if p.meta.Tooltip != "" {
			pb.SetAttributeValue("description", cty.StringVal(p.meta.Tooltip))
		}
		if p.meta.Default != cty.NilVal {
			pb.SetAttributeValue("default", p.meta.Default)
		}
	}
	for _, p := range g.outputs {
		pb := body.AppendNewBlock("output", []string{p.slot.Name}).Body()
		pb.SetAttributeValue("type", cty.StringVal(string(p.slot.Tag)))
		if p.meta.Tooltip != "" {
			pb.SetAttributeValue("description", cty.StringVal(p.meta.Tooltip))
		}
	}

	for _, n := range g.nodes {
		nb := body.AppendNewBlock("node", []string{n.ID()}).Body()
		nb.SetAttributeValue("kind", cty.StringVal(n.spec.Kind))
		nb.SetAttributeValue("at", cty.TupleVal([]cty.Value{
			cty.NumberFloatVal(n.x), cty.NumberFloatVal(n.y),
		}))
		if n.sub != nil {
			nb.SetAttributeValue("subgraph", cty.StringVal(n.sub.name))
		}
		if len(n.attrs) > 0 {
			attrs := make(map[string]cty.Value, len(n.attrs))
			for name, v := range n.attrs {
				attrs[name] = v
			}
			nb.SetAttributeValue("attrs", cty.ObjectVal(attrs))
		}
		if len(n.defaults) > 0 {
			defaults := make(map[string]cty.Value, len(n.defaults))
			for i, v := range n.defaults {
				slot, err := n.InputType(i)
				if err != nil {
					continue
				}
				defaults[slot.Name] = v
			}
			nb.SetAttributeValue("defaults", cty.ObjectVal(defaults))
		}
	}

	for _, l := range g.links {
		lb := body.AppendNewBlock("link", nil).Body()
		lb.SetAttributeValue("from", cty.StringVal(slotRef(l.fromNode, l.fromIdx, false)))
		lb.SetAttributeValue("to", cty.StringVal(slotRef(l.toNode, l.toIdx, true)))
	}

	return file.Bytes()
}

func slotRef(n *Node, index int, input bool) string {
	var slots = n.outputSlots()
	if input {
		slots = n.inputSlots()
	}
	if index >= 0 && index < len(slots) {
		return fmt.Sprintf("%s.%s", n.ID(), slots[index].Name)
	}
	return fmt.Sprintf("%s.%d", n.ID(), index)
}
