package dom

import (
	"fmt"
	"strings"
)

// Attr represents a single attribute. Value is any so the helper
// functions can carry bools and numbers; it is converted to a string
// and escaped when it enters an AttrSet.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// pair is a stored attribute: normalized key, escaped value.
type pair struct {
	key   string
	value string
}

// AttrSet is an ordered key-value mapping of element attributes.
// Keys are unique (last write wins) and stored normalized to lowercase
// hyphenated form; insertion order is preserved for deterministic
// rendering. Values are escaped at write time, never at render time.
//
// The zero value is an empty, usable set.
type AttrSet struct {
	pairs []pair
}

// NewAttrSet builds an AttrSet from source, escaping values per the
// config's escape mode. Source may be nil (empty set), another
// *AttrSet (deep copy), an ordered []Attr pair sequence, or a flat
// alternating key-value []string list. Anything else, a flat list of
// odd length, or a non-identifier key fails with ErrInvalidAttrSource.
func NewAttrSet(cfg *Config, source any) (*AttrSet, error) {
	s := &AttrSet{}

	switch src := source.(type) {
	case nil:

	case *AttrSet:
		if src != nil {
			s.pairs = append(s.pairs, src.pairs...)
		}

	case []Attr:
		for _, a := range src {
			if err := s.Set(cfg, a.Key, a.Value); err != nil {
				return nil, err
			}
		}

	case []string:
		if len(src)%2 != 0 {
			return nil, fmt.Errorf("%w: flat key-value list has odd length %d", ErrInvalidAttrSource, len(src))
		}
		for i := 0; i < len(src); i += 2 {
			if err := s.Set(cfg, src[i], src[i+1]); err != nil {
				return nil, err
			}
		}

	default:
		return nil, fmt.Errorf("%w: unsupported source type %T", ErrInvalidAttrSource, source)
	}

	return s, nil
}

// Get returns the stored (escaped) value for key. The second return
// reports presence; a missing key is not an error.
func (s *AttrSet) Get(key string) (string, bool) {
	k := foldKey(key)
	for _, p := range s.pairs {
		if p.key == k {
			return p.value, true
		}
	}
	return "", false
}

// Set escapes value for the config's escape mode and inserts or
// replaces the pair. Replacing keeps the key's original position; new
// keys append at the end. A nil value fails with ErrInvalidAttrValue
// (removal must go through Delete), and the set is left untouched on
// any failure.
func (s *AttrSet) Set(cfg *Config, key string, value any) error {
	if value == nil {
		return fmt.Errorf("%w: nil value for %q (use Delete to remove)", ErrInvalidAttrValue, key)
	}

	k, err := normalizeKey(key)
	if err != nil {
		return err
	}
	v := EscapeAttrValue(cfg.orDefault().Escape, attrString(value))

	for i := range s.pairs {
		if s.pairs[i].key == k {
			s.pairs[i].value = v
			return nil
		}
	}
	s.pairs = append(s.pairs, pair{key: k, value: v})
	return nil
}

// Delete removes the pair for key if present; otherwise it is a no-op.
func (s *AttrSet) Delete(key string) {
	k := foldKey(key)
	for i := range s.pairs {
		if s.pairs[i].key == k {
			s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
			return
		}
	}
}

// Copy returns an independent AttrSet with identical pairs. Later
// mutation of either set does not affect the other.
func (s *AttrSet) Copy() *AttrSet {
	out := &AttrSet{pairs: make([]pair, len(s.pairs))}
	copy(out.pairs, s.pairs)
	return out
}

// Pairs returns the attribute pairs in insertion order. The slice is
// freshly allocated; mutating it does not write back into the set.
func (s *AttrSet) Pairs() []Attr {
	out := make([]Attr, len(s.pairs))
	for i, p := range s.pairs {
		out[i] = Attr{Key: p.key, Value: p.value}
	}
	return out
}

// Len returns the number of attributes in the set.
func (s *AttrSet) Len() int {
	return len(s.pairs)
}

// foldKey applies the storage normalization without validation, for
// lookups.
func foldKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "_", "-"))
}

// normalizeKey lowercases the key and maps underscores to hyphens,
// then validates the result as an attribute identifier.
func normalizeKey(key string) (string, error) {
	k := foldKey(key)
	if !validKey(k) {
		return "", fmt.Errorf("%w: %q is not an attribute identifier", ErrInvalidAttrSource, key)
	}
	return k, nil
}

// validKey reports whether k is a normalized attribute identifier:
// a letter followed by letters, digits, hyphens, or colons.
func validKey(k string) bool {
	if k == "" {
		return false
	}
	for i, r := range k {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9', r == '-', r == ':':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// attrString converts an attribute value to its string form.
func attrString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
