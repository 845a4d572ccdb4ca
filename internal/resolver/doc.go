// Package resolver turns raw source values into typed configuration values.
// Each declared key names its expected kind and a default literal used when
// the key is absent from every source; a present value that cannot be parsed
// into the declared kind fails resolution with a CoercionError. Resolution
// has no side effects and is idempotent: resolving the same keys against
// unchanged sources always yields the same values.
package resolver
