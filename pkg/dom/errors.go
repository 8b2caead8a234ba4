package dom

import (
	"errors"
	"fmt"
)

// ErrInvalidAttrSource is returned when an attribute set is built from
// malformed input: a flat key-value list of odd length, an unsupported
// source type, or a key that is not a valid attribute identifier.
var ErrInvalidAttrSource = errors.New("dom: invalid attribute source")

// ErrInvalidAttrValue is returned when a nil value is passed to Set.
// Removing an attribute must go through Delete instead.
var ErrInvalidAttrValue = errors.New("dom: invalid attribute value")

// ErrInvalidChild is returned when a flattened constructor argument is
// neither a string nor a node.
var ErrInvalidChild = errors.New("dom: invalid child")

// errNotRegistered is the cause carried by a BuilderError for a
// component tag that was never defined.
var errNotRegistered = errors.New("component not registered")

// BuilderError reports a component builder failing during expansion.
// It propagates unchanged to whoever triggered the expansion, render
// included.
type BuilderError struct {
	Tag string // component tag name
	Err error  // underlying builder error
}

// Error implements the error interface.
func (e *BuilderError) Error() string {
	return fmt.Sprintf("dom: builder for <%s> failed: %v", e.Tag, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BuilderError) Unwrap() error {
	return e.Err
}
