package source

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML exposes an optional YAML settings file as flat UPPER_SNAKE keys.
// Nested mappings join with underscores (database.port becomes DATABASE_PORT)
// and scalar sequences collapse to a single comma-joined value, so list keys
// coerce identically no matter which source provided them.
type YAML struct {
	path   string
	values map[string]string
}

// LoadYAML reads and flattens the settings file at path.
func LoadYAML(path string) (*YAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}

	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse settings file %s: %w", path, err)
	}

	values := make(map[string]string)
	flatten("", root, values)
	return &YAML{path: path, values: values}, nil
}

// Lookup returns the flattened value for key.
func (y *YAML) Lookup(key string) (string, bool) {
	v, ok := y.values[key]
	return v, ok
}

// Name identifies the source by file path.
func (y *YAML) Name() string {
	return "settings file " + y.path
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := strings.ToUpper(strings.ReplaceAll(k, "-", "_"))
		if prefix != "" {
			key = prefix + "_" + key
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case []any:
			parts := make([]string, 0, len(val))
			for _, item := range val {
				parts = append(parts, scalarString(item))
			}
			out[key] = strings.Join(parts, ",")
		default:
			out[key] = scalarString(val)
		}
	}
}

func scalarString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
