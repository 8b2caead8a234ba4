package dom

import (
	"fmt"
	"strings"
)

// EscapeMode selects the character-escaping policy applied when text
// content is constructed and attribute values are written.
type EscapeMode uint8

const (
	// EscapeUTF8 escapes the markup-significant characters and leaves
	// multibyte runes intact.
	EscapeUTF8 EscapeMode = iota

	// EscapeASCII escapes everything EscapeUTF8 does, plus every
	// non-ASCII rune as a numeric character reference.
	EscapeASCII

	// EscapeAttrOnly escapes quotes inside attribute values and leaves
	// text content untouched, so pre-formed markup fragments can be
	// embedded as children.
	EscapeAttrOnly

	// EscapeNone disables escaping entirely. The caller assumes full
	// responsibility for the safety of the output.
	EscapeNone
)

// String returns the string representation of the EscapeMode.
func (m EscapeMode) String() string {
	switch m {
	case EscapeUTF8:
		return "utf8"
	case EscapeASCII:
		return "ascii"
	case EscapeAttrOnly:
		return "attr"
	case EscapeNone:
		return "none"
	default:
		return "unknown"
	}
}

// EscapeText escapes raw text content for the given mode.
func EscapeText(mode EscapeMode, s string) string {
	if mode == EscapeAttrOnly || mode == EscapeNone {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '&':
			buf.WriteString("&amp;")
		case r == '<':
			buf.WriteString("&lt;")
		case r == '>':
			buf.WriteString("&gt;")
		case mode == EscapeASCII && r > 0x7F:
			fmt.Fprintf(&buf, "&#%d;", r)
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// EscapeAttrValue escapes a raw attribute value for the given mode.
// Attribute values are always emitted double-quoted, so single quotes
// are never escaped.
func EscapeAttrValue(mode EscapeMode, s string) string {
	if mode == EscapeNone {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '"':
			buf.WriteString("&quot;")
		case mode == EscapeASCII && r > 0x7F:
			fmt.Fprintf(&buf, "&#%d;", r)
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
