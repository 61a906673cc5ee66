package tree

import (
	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/socket"
)

func (t *Tree) bindOutput(s socket.Socket, name string, tag engine.TypeTag, meta engine.PortMeta) error {
	in, err := t.graph.DeclareOutput(name, tag, meta)
	if err != nil {
		return err
	}
	out, err := s.Handle().Output(s.Index())
	if err != nil {
		return err
	}
	if err := t.graph.Link(out, in); err != nil {
		return err
	}
	t.outputCount++

	// Keep the boundary node right of everything feeding it.
	x, _, _, _ := s.Handle().Node().Bounds()
	if x+200.0 > t.outputNodeX {
		t.outputNodeX = x + 200.0
		in.Node.SetPosition(t.outputNodeX, 0)
	}
	return nil
}

// OutputGeometry binds a geometry socket to a named boundary output.
func (t *Tree) OutputGeometry(g *socket.Geometry, name, tooltip string) error {
	return t.bindOutput(g, name, engine.TagGeometry, engine.PortMeta{Tooltip: tooltip})
}

// OutputBoolean binds a boolean socket to a named boundary output.
func (t *Tree) OutputBoolean(b *socket.Boolean, name, tooltip string) error {
	return t.bindOutput(b, name, engine.TagBoolean, engine.PortMeta{Tooltip: tooltip})
}

// OutputFloat binds a scalar socket to a named float boundary output.
func (t *Tree) OutputFloat(s *socket.Scalar, name, tooltip string) error {
	return t.bindOutput(s, name, engine.TagValue, engine.PortMeta{Tooltip: tooltip})
}

// OutputInt binds a scalar socket to a named integer boundary output.
func (t *Tree) OutputInt(s *socket.Scalar, name, tooltip string) error {
	return t.bindOutput(s, name, engine.TagInt, engine.PortMeta{Tooltip: tooltip})
}

// OutputVector binds a vector socket to a named boundary output.
func (t *Tree) OutputVector(v *socket.Vector3, name, tooltip string) error {
	return t.bindOutput(v, name, engine.TagVector, engine.PortMeta{Tooltip: tooltip})
}
