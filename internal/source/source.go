// Package source provides the ordered key/value providers consulted during
// configuration resolution: the process environment, explicit override maps,
// a parsed key=value env file, and an optional YAML settings file. Sources
// are combined into a Chain where earlier entries take precedence.
package source

// Source is a single provider of raw string configuration values.
type Source interface {
	// Lookup returns the raw value for key and whether the key is present.
	Lookup(key string) (string, bool)
	// Name identifies the source in errors and logs.
	Name() string
}

// Chain consults sources in order; the first source holding a key wins.
// A present but empty raw value counts as absent, so a variable exported
// blank falls through to the next source or the declared default.
type Chain struct {
	sources []Source
}

// NewChain builds a chain from highest to lowest precedence.
func NewChain(sources ...Source) Chain {
	return Chain{sources: sources}
}

// Lookup returns the first non-empty value for key across the chain.
func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c.sources {
		if v, ok := s.Lookup(key); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
