// Package render serializes gotml document trees to HTML.
//
// The renderer walks the current tree state and emits text; every
// render is a fresh, full serialization. Text content and attribute
// values were escaped when they entered the tree, so rendering is a
// pure readback that never transforms characters.
//
// # Basic Usage
//
// To render a node tree to a string:
//
//	renderer := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := renderer.RenderToString(node)
//
// To stream to a writer:
//
//	err := renderer.RenderToWriter(w, node)
//
// The Pretty and Minified package functions are shortcuts that thread
// the process default configuration.
//
// # Output forms
//
// Pretty mode emits one tag per line with children indented one level
// deeper than their parent; inline elements keep their children on a
// single line. Minified mode inserts no whitespace beyond what the
// children contribute. A root <html> element is prefixed with the
// doctype declaration in both modes.
//
// # Components
//
// A user component renders as its computed expansion, expanding
// recursively level by level. With Collapsed set, it renders as a
// plain element from its own tag, attributes and children instead,
// and its builder is never invoked.
//
// # Failure
//
// Serialization fails only when a component builder fails during
// expansion (or the writer errors); the failure propagates to the
// caller with no partial fallback output beyond what was already
// written.
package render
