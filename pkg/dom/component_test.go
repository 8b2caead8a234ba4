package dom

import (
	"errors"
	"fmt"
	"testing"
)

func TestComponentExpandCaching(t *testing.T) {
	calls := 0
	card := Define("test-card", []string{"label"}, func(attrs *AttrSet, children []*Node) (*Node, error) {
		calls++
		label, _ := attrs.Get("label")
		return NewElement(nil, "div", Class("card"), label, []any{children})
	})

	n := card(Attr{Key: "label", Value: "hello"}, "body")

	first, err := n.Expand()
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	second, err := n.Expand()
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if first != second {
		t.Error("second Expand did not return the cached expansion")
	}
	if calls != 1 {
		t.Errorf("builder ran %d times, want 1", calls)
	}
}

func TestComponentCacheInvalidation(t *testing.T) {
	calls := 0
	dog := Define("dog", []string{"id", "size"}, func(attrs *AttrSet, children []*Node) (*Node, error) {
		calls++
		size, _ := attrs.Get("size")
		return NewElement(nil, "div", Data("size", size), []any{children})
	})

	n := dog(Attr{Key: "id", Value: "rex"}, Attr{Key: "size", Value: "big"})

	tests := []struct {
		name   string
		mutate func(t *testing.T)
	}{
		{
			name: "SetAttr",
			mutate: func(t *testing.T) {
				if err := n.SetAttr(nil, "size", "small"); err != nil {
					t.Fatalf("SetAttr: %v", err)
				}
			},
		},
		{
			name: "SetChildren",
			mutate: func(t *testing.T) {
				if err := n.SetChildren(nil, "woof"); err != nil {
					t.Fatalf("SetChildren: %v", err)
				}
			},
		},
		{
			name: "SetAttrs",
			mutate: func(t *testing.T) {
				attrs, _ := NewAttrSet(nil, []string{"size", "tiny"})
				n.SetAttrs(attrs)
			},
		},
		{
			name:   "DeleteAttr",
			mutate: func(t *testing.T) { n.DeleteAttr("size") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := n.Expand(); err != nil {
				t.Fatalf("Expand: %v", err)
			}
			before := calls
			tt.mutate(t)
			if _, err := n.Expand(); err != nil {
				t.Fatalf("Expand after mutation: %v", err)
			}
			if calls != before+1 {
				t.Errorf("builder ran %d times after mutation, want %d", calls, before+1)
			}
		})
	}
}

func TestBuilderSeesCurrentState(t *testing.T) {
	echo := Define("echo", []string{"v"}, func(attrs *AttrSet, children []*Node) (*Node, error) {
		v, _ := attrs.Get("v")
		return NewElement(nil, "span", v)
	})

	n := echo(Attr{Key: "v", Value: "one"})
	out, err := n.Expand()
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out.Children[0].Text != "one" {
		t.Errorf("expansion text = %q, want \"one\"", out.Children[0].Text)
	}

	if err := n.SetAttr(nil, "v", "two"); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	out, err = n.Expand()
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out.Children[0].Text != "two" {
		t.Errorf("expansion text = %q, want \"two\" (stale snapshot?)", out.Children[0].Text)
	}
}

func TestBuilderFailure(t *testing.T) {
	boom := errors.New("boom")
	bad := Define("bad-comp", nil, func(attrs *AttrSet, children []*Node) (*Node, error) {
		return nil, boom
	})

	n := bad()
	_, err := n.Expand()

	var berr *BuilderError
	if !errors.As(err, &berr) {
		t.Fatalf("error = %T, want *BuilderError", err)
	}
	if berr.Tag != "bad-comp" {
		t.Errorf("Tag = %q, want \"bad-comp\"", berr.Tag)
	}
	if !errors.Is(err, boom) {
		t.Error("BuilderError does not unwrap to the cause")
	}

	// A failed expansion is not cached.
	if _, err := n.Expand(); err == nil {
		t.Error("second Expand succeeded after builder failure")
	}
}

func TestBuilderNilResult(t *testing.T) {
	nilly := Define("nil-comp", nil, func(attrs *AttrSet, children []*Node) (*Node, error) {
		return nil, nil
	})

	var berr *BuilderError
	if _, err := nilly().Expand(); !errors.As(err, &berr) {
		t.Fatalf("error = %v, want *BuilderError", err)
	}
}

func TestNestedComponentExpansion(t *testing.T) {
	inner := Define("inner-comp", nil, func(attrs *AttrSet, children []*Node) (*Node, error) {
		return NewElement(nil, "em", "deep")
	})
	_ = Define("outer-comp", nil, func(attrs *AttrSet, children []*Node) (*Node, error) {
		return NewElement(nil, "div", inner())
	})

	outer, ok := Constructor("outer-comp")
	if !ok {
		t.Fatal("outer-comp not resolvable")
	}
	out, err := outer().Expand()
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	// One level only: the child is still an unexpanded component.
	if out.Children[0].Kind != KindComponent {
		t.Errorf("child kind = %v, want Component (expansion is not deep)", out.Children[0].Kind)
	}
}

func TestConstructorLookup(t *testing.T) {
	if _, ok := Constructor("div"); !ok {
		t.Error("builtin div not resolvable")
	}
	if _, ok := Constructor("no-such-tag"); ok {
		t.Error("unknown tag resolved")
	}

	Define("lookup-comp", nil, func(attrs *AttrSet, children []*Node) (*Node, error) {
		return NewElement(nil, "div")
	})
	fn, ok := Constructor("lookup-comp")
	if !ok {
		t.Fatal("registered component not resolvable")
	}
	if n := fn(); n.Kind != KindComponent {
		t.Errorf("Kind = %v, want Component", n.Kind)
	}

	def, ok := LookupComponent("lookup-comp")
	if !ok || def.Tag != "lookup-comp" {
		t.Errorf("LookupComponent = %+v, %v", def, ok)
	}
}

func TestNewComponentUnregistered(t *testing.T) {
	_, err := NewComponent(nil, "never-defined")
	var berr *BuilderError
	if !errors.As(err, &berr) {
		t.Fatalf("error = %v, want *BuilderError", err)
	}
}

func TestDefineParamsNormalized(t *testing.T) {
	Define("param-comp", []string{"Max_Size"}, func(attrs *AttrSet, children []*Node) (*Node, error) {
		return NewElement(nil, "div")
	})
	def, _ := LookupComponent("param-comp")
	if fmt.Sprint(def.Params) != "[max-size]" {
		t.Errorf("Params = %v, want [max-size]", def.Params)
	}
}
