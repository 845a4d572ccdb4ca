package resolver

import (
	"strconv"
	"strings"

	"github.com/coreroot/backend/internal/source"
)

// Kind is the declared primitive type of a configuration key.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindList
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Key declares a configuration value: its name, expected kind, and the
// default literal applied when the key is absent from every source. List
// keys carry no default literal; callers supply a fallback slice instead.
type Key struct {
	Name     string
	Kind     Kind
	Default  string
	Required bool
}

// Resolver resolves declared keys against an ordered source chain.
type Resolver struct {
	sources source.Chain
}

// New wraps a source chain for typed resolution.
func New(sources source.Chain) *Resolver {
	return &Resolver{sources: sources}
}

// raw returns the effective raw value for key: the first source hit, or the
// declared default. Required keys with no source value fail resolution.
func (r *Resolver) raw(key Key) (string, error) {
	if v, ok := r.sources.Lookup(key.Name); ok {
		return v, nil
	}
	if key.Required {
		return "", &MissingKeyError{Key: key.Name}
	}
	return key.Default, nil
}

// String resolves key as text.
func (r *Resolver) String(key Key) (string, error) {
	return r.raw(key)
}

// Int resolves key as a base-10 integer.
func (r *Resolver) Int(key Key) (int, error) {
	raw, err := r.raw(key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &CoercionError{Key: key.Name, Value: raw, Kind: KindInt}
	}
	return value, nil
}

// Bool resolves key using strconv.ParseBool semantics.
func (r *Resolver) Bool(key Key) (bool, error) {
	raw, err := r.raw(key)
	if err != nil {
		return false, err
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, &CoercionError{Key: key.Name, Value: raw, Kind: KindBool}
	}
	return value, nil
}

// List resolves key as a comma-separated list with empty segments dropped.
// An absent key, or a value with no non-empty segments, resolves to a copy
// of the caller-supplied fallback.
func (r *Resolver) List(key Key, fallback []string) ([]string, error) {
	raw, err := r.raw(key)
	if err != nil {
		return nil, err
	}
	items := splitList(raw)
	if len(items) == 0 {
		return append([]string(nil), fallback...), nil
	}
	return items, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, part)
	}
	return items
}
