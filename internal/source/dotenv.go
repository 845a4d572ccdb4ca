package source

import (
	"fmt"

	"github.com/joho/godotenv"
)

// DotEnv holds the parsed contents of a key=value env file. The file is read
// once at load time; later changes on disk are not observed.
type DotEnv struct {
	path   string
	values map[string]string
}

// LoadDotEnv parses the env file at path. A missing or malformed file is an
// error; the caller decides whether the file was optional to begin with.
func LoadDotEnv(path string) (*DotEnv, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return &DotEnv{path: path, values: values}, nil
}

// Lookup returns the value parsed from the env file for key.
func (d *DotEnv) Lookup(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Name identifies the source by file path.
func (d *DotEnv) Name() string {
	return "env file " + d.path
}
