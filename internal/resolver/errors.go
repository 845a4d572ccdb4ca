package resolver

import "fmt"

// MissingKeyError reports a required key absent from every source.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("required configuration key %s is not set", e.Key)
}

// CoercionError reports a raw value that cannot be parsed into the key's
// declared kind.
type CoercionError struct {
	Key   string
	Value string
	Kind  Kind
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("configuration key %s: cannot parse %q as %s", e.Key, e.Value, e.Kind)
}
