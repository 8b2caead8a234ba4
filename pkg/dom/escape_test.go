package dom

import "testing"

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name     string
		mode     EscapeMode
		input    string
		expected string
	}{
		{
			name:     "utf8 empty string",
			mode:     EscapeUTF8,
			input:    "",
			expected: "",
		},
		{
			name:     "utf8 plain text",
			mode:     EscapeUTF8,
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "utf8 markup chars",
			mode:     EscapeUTF8,
			input:    "a < b & b > c",
			expected: "a &lt; b &amp; b &gt; c",
		},
		{
			name:     "utf8 quotes untouched in text",
			mode:     EscapeUTF8,
			input:    `say "hi" it's fine`,
			expected: `say "hi" it's fine`,
		},
		{
			name:     "utf8 unicode preserved",
			mode:     EscapeUTF8,
			input:    "Hello 世界",
			expected: "Hello 世界",
		},
		{
			name:     "ascii markup chars",
			mode:     EscapeASCII,
			input:    "<b>",
			expected: "&lt;b&gt;",
		},
		{
			name:     "ascii non-ascii as numeric refs",
			mode:     EscapeASCII,
			input:    "héllo 世",
			expected: "h&#233;llo &#19990;",
		},
		{
			name:     "attr mode leaves text untouched",
			mode:     EscapeAttrOnly,
			input:    "<b>bold</b>",
			expected: "<b>bold</b>",
		},
		{
			name:     "none mode leaves text untouched",
			mode:     EscapeNone,
			input:    `<script>alert("x")</script>`,
			expected: `<script>alert("x")</script>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeText(tt.mode, tt.input)
			if result != tt.expected {
				t.Errorf("EscapeText(%v, %q) = %q, want %q", tt.mode, tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeAttrValue(t *testing.T) {
	tests := []struct {
		name     string
		mode     EscapeMode
		input    string
		expected string
	}{
		{
			name:     "utf8 double quote",
			mode:     EscapeUTF8,
			input:    `value="test"`,
			expected: "value=&quot;test&quot;",
		},
		{
			name:     "utf8 single quote untouched",
			mode:     EscapeUTF8,
			input:    "it's",
			expected: "it's",
		},
		{
			name:     "utf8 markup chars untouched in attrs",
			mode:     EscapeUTF8,
			input:    "a<b>&c",
			expected: "a<b>&c",
		},
		{
			name:     "ascii quote and non-ascii",
			mode:     EscapeASCII,
			input:    `"é"`,
			expected: "&quot;&#233;&quot;",
		},
		{
			name:     "attr mode escapes quote",
			mode:     EscapeAttrOnly,
			input:    `say "hi"`,
			expected: "say &quot;hi&quot;",
		},
		{
			name:     "none mode passthrough",
			mode:     EscapeNone,
			input:    `"anything" goes`,
			expected: `"anything" goes`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EscapeAttrValue(tt.mode, tt.input)
			if result != tt.expected {
				t.Errorf("EscapeAttrValue(%v, %q) = %q, want %q", tt.mode, tt.input, result, tt.expected)
			}
		})
	}
}

func TestEscapeModeString(t *testing.T) {
	modes := map[EscapeMode]string{
		EscapeUTF8:     "utf8",
		EscapeASCII:    "ascii",
		EscapeAttrOnly: "attr",
		EscapeNone:     "none",
		EscapeMode(99): "unknown",
	}
	for mode, want := range modes {
		if got := mode.String(); got != want {
			t.Errorf("EscapeMode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}

func BenchmarkEscapeText(b *testing.B) {
	b.Run("plain text", func(b *testing.B) {
		s := "Hello, World! This is a plain text string without special characters."
		for i := 0; i < b.N; i++ {
			EscapeText(EscapeUTF8, s)
		}
	})

	b.Run("with special chars", func(b *testing.B) {
		s := `<script>alert("xss")</script> & more content here`
		for i := 0; i < b.N; i++ {
			EscapeText(EscapeUTF8, s)
		}
	})
}
