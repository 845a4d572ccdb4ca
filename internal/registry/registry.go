// Package registry tracks the installed application components and the
// middleware chain the backend is wired with. Both lists are ordered and the
// order is significant: middleware runs top to bottom on every request.
package registry

import (
	"errors"
	"sync"
)

var (
	// ErrInvalidApps indicates the app list is empty or contains blank or duplicate names.
	ErrInvalidApps = errors.New("installed apps must be unique non-empty names")
	// ErrInvalidMiddleware indicates the chain is empty, has duplicates, or orders cors after common.
	ErrInvalidMiddleware = errors.New("middleware chain must be unique non-empty names with cors before common")
)

var defaultApps = []string{
	"admin",
	"auth",
	"contenttypes",
	"sessions",
	"messages",
	"staticfiles",
	"rest",
	"jwt",
	"cors",
	"core",
	"user",
	"post",
	"comment",
}

// cors must run before common so preflight responses short-circuit early.
var defaultMiddleware = []string{
	"security",
	"sessions",
	"cors",
	"common",
	"csrf",
	"auth",
	"messages",
	"clickjacking",
}

// Registry keeps the installed app list and middleware chain, guarded by a
// RWMutex so bootstrap-time registration and later reads are safe.
type Registry struct {
	mu         sync.RWMutex
	apps       []string
	middleware []string
}

// New initialises a registry with the default apps and middleware chain.
func New() *Registry {
	return &Registry{
		apps:       clone(defaultApps),
		middleware: clone(defaultMiddleware),
	}
}

// DefaultApps returns a copy of the default installed app list.
func DefaultApps() []string {
	return clone(defaultApps)
}

// DefaultMiddleware returns a copy of the default middleware chain.
func DefaultMiddleware() []string {
	return clone(defaultMiddleware)
}

// Apps returns a defensive copy of the installed app list, in order.
func (r *Registry) Apps() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return clone(r.apps)
}

// Middleware returns a defensive copy of the middleware chain, in order.
func (r *Registry) Middleware() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return clone(r.middleware)
}

// HasApp reports whether an app is installed.
func (r *Registry) HasApp(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, app := range r.apps {
		if app == name {
			return true
		}
	}
	return false
}

// SetApps validates and replaces the installed app list, preserving order.
func (r *Registry) SetApps(apps []string) error {
	if !uniqueNonEmpty(apps) {
		return ErrInvalidApps
	}

	r.mu.Lock()
	r.apps = clone(apps)
	r.mu.Unlock()

	return nil
}

// SetMiddleware validates and replaces the middleware chain. When both are
// present, cors must precede common or preflight requests would be consumed
// before the CORS headers are applied.
func (r *Registry) SetMiddleware(chain []string) error {
	if !uniqueNonEmpty(chain) {
		return ErrInvalidMiddleware
	}
	cors, common := index(chain, "cors"), index(chain, "common")
	if cors >= 0 && common >= 0 && cors > common {
		return ErrInvalidMiddleware
	}

	r.mu.Lock()
	r.middleware = clone(chain)
	r.mu.Unlock()

	return nil
}

func clone(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func uniqueNonEmpty(names []string) bool {
	if len(names) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return false
		}
		if _, dup := seen[name]; dup {
			return false
		}
		seen[name] = struct{}{}
	}
	return true
}

func index(names []string, target string) int {
	for i, name := range names {
		if name == target {
			return i
		}
	}
	return -1
}
