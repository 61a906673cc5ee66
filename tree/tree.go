package tree

import (
	"context"
	"fmt"

	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/internal/ctxlog"
)

// Tree is a named graph with declared typed inputs and outputs, built
// once by a body function and reusable afterwards as a single callable
// node in other graphs.
type Tree struct {
	graph engine.Graph
	name  string

	inputCount  int
	outputCount int

	// outputNodeX tracks how far right the output boundary node has
	// been pushed while binding outputs.
	outputNodeX float64
}

// Build registers (or rebuilds) the named graph on the engine, runs
// the body to populate it, and finishes with the layout pass. The
// graph is cleared first, so rebuilding under an existing name starts
// from scratch and discards any defaults tuned on the old contents.
func Build(ctx context.Context, eng engine.Engine, name string, body func(*Tree) error) (*Tree, error) {
	g, err := eng.Graph(name)
	if err != nil {
		return nil, err
	}
	if err := g.Clear(); err != nil {
		return nil, fmt.Errorf("tree: clearing graph %q: %w", name, err)
	}

	t := &Tree{graph: g, name: name}
	if err := body(t); err != nil {
		return nil, fmt.Errorf("tree: building %q: %w", name, err)
	}
	Layout(g)

	ctxlog.FromContext(ctx).Debug("built tree",
		"name", name,
		"nodes", len(g.Nodes()),
		"inputs", t.inputCount,
		"outputs", t.outputCount,
	)
	return t, nil
}

// Name returns the name the tree's graph is registered under.
func (t *Tree) Name() string { return t.name }

// Graph exposes the underlying graph.
func (t *Tree) Graph() engine.Graph { return t.graph }

// NumInputs reports how many boundary inputs the body declared.
func (t *Tree) NumInputs() int { return t.inputCount }

// NumOutputs reports how many boundary outputs the body declared.
func (t *Tree) NumOutputs() int { return t.outputCount }
