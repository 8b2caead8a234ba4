package dom

import (
	"sync"
)

// Component is a registered user component definition. The builder is
// shared by every node created under the tag.
type Component struct {
	Tag     string
	Params  []string // declared attribute keys, kept as metadata
	Builder Builder
}

var (
	componentsMu sync.RWMutex
	components   = make(map[string]*Component)
)

// Define registers a component under tag and returns a constructor
// with the same calling convention as the built-in tag functions.
//
// The declared params are the attribute keys the builder expects to
// read; they are normalized and retained on the definition, but the
// builder always receives the node's full current AttrSet, so it may
// branch on undeclared attributes as well.
//
// Redefining a tag replaces the builder for nodes created afterwards;
// existing nodes keep the builder they were created with.
func Define(tag string, params []string, builder Builder) func(args ...any) *Node {
	normalized := make([]string, len(params))
	for i, p := range params {
		normalized[i] = foldKey(p)
	}
	def := &Component{Tag: tag, Params: normalized, Builder: builder}

	componentsMu.Lock()
	components[tag] = def
	componentsMu.Unlock()

	return func(args ...any) *Node {
		return newComponent(nil, def, args)
	}
}

// LookupComponent returns the registered definition for tag.
func LookupComponent(tag string) (*Component, bool) {
	componentsMu.RLock()
	def, ok := components[tag]
	componentsMu.RUnlock()
	return def, ok
}

// NewComponent creates an instance of a registered component,
// following the same argument rules as NewElement. An unregistered
// tag is reported as a *BuilderError.
func NewComponent(cfg *Config, tag string, args ...any) (*Node, error) {
	def, ok := LookupComponent(tag)
	if !ok {
		return nil, &BuilderError{Tag: tag, Err: errNotRegistered}
	}
	node, err := NewElement(cfg, def.Tag, args...)
	if err != nil {
		return nil, err
	}
	node.Kind = KindComponent
	node.builder = def.Builder
	return node, nil
}

// newComponent is the constructor body shared by Define and the
// lookup table. The uniform variadic signature cannot return an
// error, so invalid arguments panic with the wrapped sentinel.
func newComponent(cfg *Config, def *Component, args []any) *Node {
	node, err := NewElement(cfg, def.Tag, args...)
	if err != nil {
		panic(err)
	}
	node.Kind = KindComponent
	node.builder = def.Builder
	return node
}

// Constructor resolves a name to its constructor function. Registered
// components shadow built-in tags. Surface-syntax layers that let
// bare names stand for constructors resolve through this table.
func Constructor(name string) (func(args ...any) *Node, bool) {
	componentsMu.RLock()
	def, ok := components[name]
	componentsMu.RUnlock()
	if ok {
		return func(args ...any) *Node {
			return newComponent(nil, def, args)
		}, true
	}

	fn, ok := builtins[name]
	return fn, ok
}
