package source

import "os"

// Environ reads from the process environment.
type Environ struct{}

// Lookup returns the environment variable value for key.
func (Environ) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Name identifies the source.
func (Environ) Name() string {
	return "environment"
}
