package dom

// Config carries the settings consulted during construction and
// rendering: the escaping mode applied when text and attribute values
// enter the tree, and the component display mode read at render time.
//
// Construction entry points accept a *Config; a nil value means the
// process default. Changing a mode affects subsequent operations only:
// already-escaped text and already-cached expansions are never
// rewritten.
type Config struct {
	// Escape is the escaping mode applied when text nodes are
	// constructed and attribute values are set.
	Escape EscapeMode

	// Collapsed renders user components as their own tag, attributes
	// and children instead of their computed expansion.
	Collapsed bool
}

// defaultConfig is consulted whenever a nil *Config is passed.
// It is shared mutable state with no locking; callers needing
// concurrent access must thread their own Config instead.
var defaultConfig = &Config{Escape: EscapeUTF8}

// Default returns the process default configuration.
func Default() *Config {
	return defaultConfig
}

// SetDefault replaces the process default configuration. Passing nil
// restores the initial settings (UTF8 escaping, expanded components).
func SetDefault(cfg *Config) {
	if cfg == nil {
		cfg = &Config{Escape: EscapeUTF8}
	}
	defaultConfig = cfg
}

// SetEscapeMode changes the escaping mode of the process default.
func SetEscapeMode(mode EscapeMode) {
	defaultConfig.Escape = mode
}

// SetCollapsed changes the component display mode of the process
// default.
func SetCollapsed(collapsed bool) {
	defaultConfig.Collapsed = collapsed
}

// orDefault resolves a possibly-nil config to the process default.
func (c *Config) orDefault() *Config {
	if c == nil {
		return defaultConfig
	}
	return c
}
