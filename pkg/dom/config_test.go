package dom

import "testing"

func TestDefaultConfig(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	if got := Default().Escape; got != EscapeUTF8 {
		t.Fatalf("initial Escape = %v, want EscapeUTF8", got)
	}
	if Default().Collapsed {
		t.Fatal("initial Collapsed = true, want false")
	}

	SetDefault(&Config{Escape: EscapeNone, Collapsed: true})
	if Default().Escape != EscapeNone || !Default().Collapsed {
		t.Errorf("after SetDefault: Escape = %v, Collapsed = %v", Default().Escape, Default().Collapsed)
	}

	// nil restores the initial settings.
	SetDefault(nil)
	if Default().Escape != EscapeUTF8 || Default().Collapsed {
		t.Errorf("after SetDefault(nil): Escape = %v, Collapsed = %v", Default().Escape, Default().Collapsed)
	}
}

func TestSetEscapeModeAffectsSubsequentOnly(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	before := Text("<b>")
	SetEscapeMode(EscapeNone)
	after := Text("<b>")

	// Escaping happens once, at construction; a mode change never
	// rewrites text that already entered the tree.
	if before.Text != "&lt;b&gt;" {
		t.Errorf("earlier text = %q, want already-escaped form", before.Text)
	}
	if after.Text != "<b>" {
		t.Errorf("later text = %q, want raw form", after.Text)
	}

	attrs := &AttrSet{}
	if err := attrs.Set(nil, "title", `say "hi"`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := attrs.Get("title"); got != `say "hi"` {
		t.Errorf("attr under EscapeNone = %q, want unescaped", got)
	}

	SetEscapeMode(EscapeUTF8)
	node := Text("<b>")
	if node.Text != "&lt;b&gt;" {
		t.Errorf("text after restoring mode = %q", node.Text)
	}
}

func TestSetEscapeModeKeepsCachedExpansions(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	ctor := Define("config-static", nil, func(attrs *AttrSet, children []*Node) (*Node, error) {
		return NewElement(nil, "p", "cached")
	})
	node := ctor()

	first, err := node.Expand()
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	SetEscapeMode(EscapeASCII)

	second, err := node.Expand()
	if err != nil {
		t.Fatalf("Expand after mode change: %v", err)
	}
	if second != first {
		t.Error("escape mode change invalidated a cached expansion")
	}
}

func TestSetCollapsed(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	SetCollapsed(true)
	if !Default().Collapsed {
		t.Error("SetCollapsed(true) not reflected in Default()")
	}
	SetCollapsed(false)
	if Default().Collapsed {
		t.Error("SetCollapsed(false) not reflected in Default()")
	}
}
