package bootstrap

import (
	"fmt"

	"github.com/coreroot/backend/internal/registry"
	"github.com/coreroot/backend/internal/resolver"
	"github.com/coreroot/backend/internal/settings"
	"github.com/coreroot/backend/internal/source"
)

// Options controls which sources participate in resolution and how strictly
// the result is checked.
type Options struct {
	// EnvFile is an optional key=value file consulted below the process
	// environment. Empty disables it; a non-empty path must exist.
	EnvFile string
	// SettingsFile is an optional YAML file with the lowest precedence.
	SettingsFile string
	// Overrides are explicit values with the highest precedence.
	Overrides map[string]string
	// Strict additionally rejects configurations that are unsafe for a
	// production environment.
	Strict bool
}

// App bundles everything the backend needs after startup.
type App struct {
	Settings *settings.Settings
	Registry *registry.Registry
}

// Load builds the source chain in precedence order (overrides, process
// environment, env file, settings file), resolves the settings snapshot,
// and validates it. It runs to completion exactly once at process start;
// any failure aborts startup.
func Load(opts Options) (*App, error) {
	sources := make([]source.Source, 0, 4)

	if len(opts.Overrides) > 0 {
		sources = append(sources, source.NewMap("overrides", opts.Overrides))
	}
	sources = append(sources, source.Environ{})
	if opts.EnvFile != "" {
		dotenv, err := source.LoadDotEnv(opts.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		sources = append(sources, dotenv)
	}
	if opts.SettingsFile != "" {
		yml, err := source.LoadYAML(opts.SettingsFile)
		if err != nil {
			return nil, fmt.Errorf("load settings file: %w", err)
		}
		sources = append(sources, yml)
	}

	snap, err := settings.Load(resolver.New(source.NewChain(sources...)))
	if err != nil {
		return nil, fmt.Errorf("resolve settings: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if opts.Strict {
		if err := snap.CheckProduction(); err != nil {
			return nil, fmt.Errorf("unsafe production settings: %w", err)
		}
	}

	return &App{
		Settings: snap,
		Registry: registry.New(),
	}, nil
}
