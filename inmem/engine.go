package inmem

import (
	"fmt"
	"sync"

	"github.com/vk/geoscript/catalog"
	"github.com/vk/geoscript/engine"
)

// Engine hosts named in-memory graphs built against one kind catalog.
type Engine struct {
	cat *catalog.Catalog

	mu     sync.Mutex
	graphs map[string]*Graph
	order  []string
}

// NewEngine creates an engine over the given kind catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		cat:    cat,
		graphs: make(map[string]*Graph),
	}
}

// Graph returns the graph registered under name, creating it on first
// request. Requesting the same name again yields the same graph.
func (e *Engine) Graph(name string) (engine.Graph, error) {
	if name == "" {
		return nil, fmt.Errorf("inmem: graph name must not be empty")
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if g, ok := e.graphs[name]; ok {
		return g, nil
	}
	g := &Graph{eng: e, name: name}
	e.graphs[name] = g
	e.order = append(e.order, name)
	return g, nil
}

// Graphs returns every registered graph in registration order.
func (e *Engine) Graphs() []*Graph {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Graph, 0, len(e.order))
	for _, name := range e.order {
		out = append(out, e.graphs[name])
	}
	return out
}

// Catalog exposes the kind catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}
