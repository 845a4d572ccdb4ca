package source

// Map is a static in-memory source, used for explicit overrides and tests.
type Map struct {
	label  string
	values map[string]string
}

// NewMap wraps values as a source identified by label.
func NewMap(label string, values map[string]string) Map {
	return Map{label: label, values: values}
}

// Lookup returns the stored value for key.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Name identifies the source.
func (m Map) Name() string {
	return m.label
}
