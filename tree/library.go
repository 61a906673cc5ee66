package tree

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/vk/geoscript/engine"
	"github.com/vk/geoscript/internal/ctxlog"
	"github.com/vk/geoscript/socket"
)

// UnsupportedAnnotationError reports a function parameter or result
// whose type is outside the socket variant set.
type UnsupportedAnnotationError struct {
	Func string
	Dir  string
	Pos  int
	Type string
}

func (e *UnsupportedAnnotationError) Error() string {
	return fmt.Sprintf("tree: %s: %s %d has type %s, want a socket variant pointer", e.Func, e.Dir, e.Pos, e.Type)
}

var (
	scalarType   = reflect.TypeOf((*socket.Scalar)(nil))
	vectorType   = reflect.TypeOf((*socket.Vector3)(nil))
	booleanType  = reflect.TypeOf((*socket.Boolean)(nil))
	geometryType = reflect.TypeOf((*socket.Geometry)(nil))
	objectType   = reflect.TypeOf((*socket.ObjectRef)(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// Library builds trees out of ordinary Go functions and memoizes them
// by derived name, so the same function referenced from two call sites
// resolves to one registered graph.
type Library struct {
	eng engine.Engine

	mu       sync.Mutex
	units    map[string]*Tree
	building map[string]bool
}

// NewLibrary creates a library over the given engine.
func NewLibrary(eng engine.Engine) *Library {
	return &Library{
		eng:      eng,
		units:    make(map[string]*Tree),
		building: make(map[string]bool),
	}
}

// Function returns the tree for fn, building it on first use.
//
// fn's parameters must be socket variant pointers; each becomes a
// typed boundary input, named positionally. Results are bound as
// boundary outputs the same way, except an optional trailing error
// which aborts the build when non-nil.
//
// A function body may itself call Function to resolve a callee unit;
// the lock is not held across the build. A name that is already mid-
// build marks a construction cycle and fails instead of recursing.
func (l *Library) Function(ctx context.Context, fn any) (*Tree, error) {
	name, err := UniqueName(fn)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	if t, ok := l.units[name]; ok {
		l.mu.Unlock()
		return t, nil
	}
	if l.building[name] {
		l.mu.Unlock()
		return nil, fmt.Errorf("tree: %s: unit refers to itself during its own construction", shortName(name))
	}
	l.building[name] = true
	l.mu.Unlock()

	t, err := buildFromFunc(ctx, l.eng, name, fn)

	l.mu.Lock()
	delete(l.building, name)
	if err == nil {
		l.units[name] = t
	}
	l.mu.Unlock()

	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("registered function unit", "unit", shortName(name))
	return t, nil
}

func buildFromFunc(ctx context.Context, eng engine.Engine, name string, fn any) (*Tree, error) {
	v := reflect.ValueOf(fn)
	ft := v.Type()
	if ft.IsVariadic() {
		return nil, fmt.Errorf("tree: %s: variadic functions cannot declare a fixed input boundary", name)
	}
	if err := checkSignature(name, ft); err != nil {
		return nil, err
	}

	body := func(t *Tree) error {
		args := make([]reflect.Value, ft.NumIn())
		for i := 0; i < ft.NumIn(); i++ {
			s, err := declareParam(t, ft.In(i), i)
			if err != nil {
				return err
			}
			args[i] = reflect.ValueOf(s)
		}

		results := v.Call(args)
		if n := len(results); n > 0 && ft.Out(n-1) == errorType {
			if errv := results[n-1]; !errv.IsNil() {
				return errv.Interface().(error)
			}
			results = results[:n-1]
		}

		for i, r := range results {
			if err := bindResult(t, r.Interface(), i, len(results)); err != nil {
				return err
			}
		}
		return nil
	}
	return Build(ctx, eng, name, body)
}

// checkSignature rejects unsupported parameter and result types before
// any graph state is touched.
func checkSignature(name string, ft reflect.Type) error {
	for i := 0; i < ft.NumIn(); i++ {
		switch ft.In(i) {
		case scalarType, vectorType, booleanType, geometryType, objectType:
		default:
			return &UnsupportedAnnotationError{Func: name, Dir: "parameter", Pos: i, Type: ft.In(i).String()}
		}
	}
	for i := 0; i < ft.NumOut(); i++ {
		if i == ft.NumOut()-1 && ft.Out(i) == errorType {
			continue
		}
		switch ft.Out(i) {
		case scalarType, vectorType, booleanType, geometryType:
		default:
			return &UnsupportedAnnotationError{Func: name, Dir: "result", Pos: i, Type: ft.Out(i).String()}
		}
	}
	return nil
}

func declareParam(t *Tree, pt reflect.Type, pos int) (any, error) {
	name := fmt.Sprintf("input_%d", pos)
	switch pt {
	case scalarType:
		return t.InputFloat(name, FloatInput{})
	case vectorType:
		return t.InputVector(name, VectorInput{})
	case booleanType:
		return t.InputBoolean(name, BoolInput{})
	case geometryType:
		return t.InputGeometry(name, "")
	case objectType:
		return t.InputObject(name, "")
	}
	return nil, &UnsupportedAnnotationError{Func: t.name, Dir: "parameter", Pos: pos, Type: pt.String()}
}

func bindResult(t *Tree, r any, pos, total int) error {
	name := "result"
	if total > 1 {
		name = fmt.Sprintf("result_%d", pos)
	}
	switch s := r.(type) {
	case *socket.Scalar:
		return t.OutputFloat(s, name, "")
	case *socket.Vector3:
		return t.OutputVector(s, name, "")
	case *socket.Boolean:
		return t.OutputBoolean(s, name, "")
	case *socket.Geometry:
		return t.OutputGeometry(s, name, "")
	}
	return &UnsupportedAnnotationError{Func: t.name, Dir: "result", Pos: pos, Type: fmt.Sprintf("%T", r)}
}
