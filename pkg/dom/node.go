package dom

import "fmt"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText      Kind = iota // plain text, escaped at construction
	KindElement               // built-in HTML element
	KindComponent             // user-defined composite node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Builder derives a component's expansion from the component node's
// current attributes and children. It must not have observable side
// effects beyond producing the replacement subtree.
type Builder func(attrs *AttrSet, children []*Node) (*Node, error)

// Node is a single node of the document tree.
//
// A node exclusively owns its AttrSet and the list structure of its
// children. The child nodes themselves may be shared by reference
// between trees; a parent never mutates them.
type Node struct {
	Kind Kind
	Tag  string // element or component tag name

	// Attrs is nil only for text nodes. Mutate it through SetAttr and
	// SetAttrs: writing to the set directly bypasses the expansion
	// cache invalidation and a component may serve a stale expansion.
	Attrs    *AttrSet
	Children []*Node // always flattened, no nil entries
	Text     string  // KindText content, already escaped

	builder   Builder // KindComponent only, shared per definition
	expansion *Node   // cached expansion; nil means uncomputed
}

// NewText creates a text node, escaping content for the config's
// escape mode. Content must be raw: escaping happens exactly once,
// here, and render is a pure readback.
func NewText(cfg *Config, content string) *Node {
	return &Node{
		Kind: KindText,
		Text: EscapeText(cfg.orDefault().Escape, content),
	}
}

// Text creates a text node under the default configuration.
func Text(content string) *Node {
	return NewText(nil, content)
}

// Textf creates a formatted text node under the default configuration.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// NewElement creates an element node with the given tag.
//
// Arguments are interpreted in order:
//   - a leading *AttrSet (copied in) or flat key-value []string is
//     consumed wholesale as the node's attributes
//   - Attr and []Attr values merge into the attributes wherever they
//     appear, last write winning
//   - nil placeholders are discarded
//   - strings become escaped text nodes
//   - *Node, []*Node, [][]*Node, and arbitrarily nested []any
//     sequences are recursively flattened into one ordered children
//     list
//
// Any other argument fails with ErrInvalidChild, leaving no
// observable state behind.
func NewElement(cfg *Config, tag string, args ...any) (*Node, error) {
	cfg = cfg.orDefault()
	node := &Node{
		Kind:  KindElement,
		Tag:   tag,
		Attrs: &AttrSet{},
	}

	rest := args
	if len(rest) > 0 {
		switch src := rest[0].(type) {
		case *AttrSet:
			if src != nil {
				node.Attrs = src.Copy()
			}
			rest = rest[1:]
		case []string:
			attrs, err := NewAttrSet(cfg, src)
			if err != nil {
				return nil, err
			}
			node.Attrs = attrs
			rest = rest[1:]
		}
	}

	children, err := node.appendArgs(cfg, nil, rest)
	if err != nil {
		return nil, err
	}
	node.Children = children
	return node, nil
}

// appendArgs flattens constructor arguments into dst, routing Attr
// values into the node's attribute set.
func (n *Node) appendArgs(cfg *Config, dst []*Node, args []any) ([]*Node, error) {
	var err error
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			if v.IsEmpty() {
				continue
			}
			if err := n.Attrs.Set(cfg, v.Key, v.Value); err != nil {
				return nil, err
			}
		case []Attr:
			for _, a := range v {
				if a.IsEmpty() {
					continue
				}
				if err := n.Attrs.Set(cfg, a.Key, a.Value); err != nil {
					return nil, err
				}
			}
		default:
			dst, err = flattenChildren(cfg, dst, []any{arg})
			if err != nil {
				return nil, err
			}
		}
	}
	return dst, nil
}

// flattenChildren recursively flattens args into dst, discarding nil
// placeholders. A flattened value that is neither a string nor a node
// fails with ErrInvalidChild.
func flattenChildren(cfg *Config, dst []*Node, args []any) ([]*Node, error) {
	var err error
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:

		case string:
			dst = append(dst, NewText(cfg, v))

		case *Node:
			if v != nil {
				dst = append(dst, v)
			}

		case []*Node:
			for _, c := range v {
				if c != nil {
					dst = append(dst, c)
				}
			}

		case [][]*Node:
			for _, group := range v {
				for _, c := range group {
					if c != nil {
						dst = append(dst, c)
					}
				}
			}

		case []any:
			dst, err = flattenChildren(cfg, dst, v)
			if err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("%w: %T", ErrInvalidChild, arg)
		}
	}
	return dst, nil
}

// SetAttrs replaces the node's attributes wholesale. The set is
// copied in, so the caller keeps an independent handle; nil installs
// an empty set. A component's cached expansion is invalidated.
func (n *Node) SetAttrs(attrs *AttrSet) {
	if attrs == nil {
		n.Attrs = &AttrSet{}
	} else {
		n.Attrs = attrs.Copy()
	}
	n.invalidate()
}

// SetChildren replaces the node's children with a freshly flattened
// sequence of the input, under the same flattening rules as
// construction (attribute arguments are not accepted here). On
// failure the node is left untouched. A component's cached expansion
// is invalidated.
func (n *Node) SetChildren(cfg *Config, children ...any) error {
	flat, err := flattenChildren(cfg.orDefault(), nil, children)
	if err != nil {
		return err
	}
	n.Children = flat
	n.invalidate()
	return nil
}

// SetAttr sets a single attribute, escaping the value for the
// config's escape mode, and invalidates a component's cached
// expansion.
func (n *Node) SetAttr(cfg *Config, key string, value any) error {
	if n.Attrs == nil {
		n.Attrs = &AttrSet{}
	}
	if err := n.Attrs.Set(cfg, key, value); err != nil {
		return err
	}
	n.invalidate()
	return nil
}

// DeleteAttr removes an attribute if present and invalidates a
// component's cached expansion.
func (n *Node) DeleteAttr(key string) {
	if n.Attrs != nil {
		n.Attrs.Delete(key)
	}
	n.invalidate()
}

// invalidate drops the cached expansion. Every mutating operation
// routes through here so a component can never serve a stale
// expansion.
func (n *Node) invalidate() {
	if n.Kind == KindComponent {
		n.expansion = nil
	}
}

// Expand returns the component's expansion, invoking its builder with
// the current attributes and children on a cache miss and caching the
// result. The expansion may itself contain further components; each
// level expands independently when traversed. Calling Expand on a
// text or element node returns the node itself.
func (n *Node) Expand() (*Node, error) {
	if n.Kind != KindComponent {
		return n, nil
	}
	if n.expansion != nil {
		return n.expansion, nil
	}
	if n.builder == nil {
		return nil, &BuilderError{Tag: n.Tag, Err: fmt.Errorf("no builder registered")}
	}

	out, err := n.builder(n.Attrs, n.Children)
	if err != nil {
		return nil, &BuilderError{Tag: n.Tag, Err: err}
	}
	if out == nil {
		return nil, &BuilderError{Tag: n.Tag, Err: fmt.Errorf("builder returned nil node")}
	}
	n.expansion = out
	return out, nil
}
