// Package dom provides the document tree model for gotml.
//
// The tree is built from a closed set of node kinds: text nodes,
// built-in HTML elements, and user-defined components. Nodes carry an
// ordered attribute set and a flattened list of children, and may be
// mutated after construction through the attribute and child setters.
//
// # Escaping
//
// Text content and attribute values are escaped once, at the moment
// they enter the tree, according to the active EscapeMode. Rendering
// is a pure readback and never escapes again. Callers must pass raw
// (unescaped) input; pre-escaped strings would be double-escaped.
//
// # Elements
//
// Elements are created using variadic factory functions:
//
//	Div(ID("main"), Class("card"),
//	    H1("Title"),
//	    P("Content"),
//	)
//
// Plain strings become escaped text nodes. Nested slices of nodes and
// nil placeholders are flattened away, so helpers can return groups of
// children or nothing at all.
//
// # Components
//
// Define registers a builder under a tag name and returns a
// constructor with the same calling convention as the built-in tags.
// A component node caches the subtree its builder produces; mutating
// the node's attributes or children drops the cache, and the builder
// runs again with the current state the next time the expansion is
// needed.
//
// # Configuration
//
// Construction entry points accept a *Config carrying the escape mode
// and the component display mode. A nil Config means the process
// default, which simple callers can adjust with SetEscapeMode and
// SetCollapsed. The default is shared mutable state with no locking;
// concurrent callers should thread their own Config instead.
package dom
