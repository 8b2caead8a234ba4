package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gotml-dev/gotml/pkg/dom"
)

// Doctype is the document-type declaration emitted before a root
// <html> element.
const Doctype = "<!DOCTYPE html>"

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output, one tag per line. Increases
	// output size; minified output is the default.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces if not specified.
	Indent string

	// Collapsed renders user components as their own tag, attributes
	// and children instead of their computed expansion. Builders are
	// never invoked in collapsed mode.
	Collapsed bool
}

// Renderer serializes node trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// Pretty renders node in indented form, reading the component display
// mode from the process default configuration.
func Pretty(node *dom.Node) (string, error) {
	r := NewRenderer(RendererConfig{Pretty: true, Collapsed: dom.Default().Collapsed})
	return r.RenderToString(node)
}

// Minified renders node with no inserted whitespace, reading the
// component display mode from the process default configuration.
func Minified(node *dom.Node) (string, error) {
	r := NewRenderer(RendererConfig{Collapsed: dom.Default().Collapsed})
	return r.RenderToString(node)
}

// RenderToString renders a node tree to a complete HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0, r.config.Pretty)
}

// renderNode dispatches rendering based on node kind. The pretty flag
// is cleared inside inline elements so their content stays on one
// line.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int, pretty bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindText:
		return r.renderText(w, node, depth, pretty)
	case dom.KindElement:
		return r.renderElement(w, node, depth, pretty)
	case dom.KindComponent:
		if r.config.Collapsed {
			return r.renderElement(w, node, depth, pretty)
		}
		expanded, err := node.Expand()
		if err != nil {
			return err
		}
		return r.renderNode(w, expanded, depth, pretty)
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

// renderText emits a text node's content verbatim; escaping already
// happened at construction.
func (r *Renderer) renderText(w io.Writer, node *dom.Node, depth int, pretty bool) error {
	if node.Text == "" {
		return nil
	}
	if pretty {
		r.writeIndent(w, depth)
	}
	if _, err := io.WriteString(w, node.Text); err != nil {
		return err
	}
	if pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int, pretty bool) error {
	tag := node.Tag

	// Document root gets the doctype prefix.
	if tag == "html" && depth == 0 {
		if _, err := io.WriteString(w, Doctype); err != nil {
			return err
		}
		if pretty {
			io.WriteString(w, "\n")
		}
	}

	if pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if err := writeOpenTag(w, node); err != nil {
		return err
	}

	// Void elements self-close and have no closing tag.
	if isVoidElement(tag) && len(node.Children) == 0 {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	childPretty := pretty && !isInlineElement(tag)
	if childPretty && len(node.Children) > 0 {
		io.WriteString(w, "\n")
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1, childPretty); err != nil {
			return err
		}
	}

	if childPretty && len(node.Children) > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if pretty {
		io.WriteString(w, "\n")
	}

	return nil
}

// writeOpenTag writes "<tag" plus the attributes in insertion order,
// without the closing '>'. Attribute values were escaped at write
// time and are emitted double-quoted as stored.
func writeOpenTag(w io.Writer, node *dom.Node) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if node.Attrs == nil {
		return nil
	}
	for _, a := range node.Attrs.Pairs() {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, a.Value); err != nil {
			return err
		}
	}
	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}
