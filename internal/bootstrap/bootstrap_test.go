package bootstrap

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/coreroot/backend/internal/registry"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// clearEnv blanks a variable so the chain treats it as absent regardless of
// what the test process inherited.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadWithDefaultsOnly(t *testing.T) {
	clearEnv(t, "ENV", "DATABASE_PORT", "PAGE_SIZE", "DJANGO_ALLOWED_HOSTS")

	app, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !app.Settings.Debug {
		t.Fatalf("expected debug on with no environment set")
	}
	if app.Settings.Database.Port != 5432 {
		t.Fatalf("expected default database port, got %d", app.Settings.Database.Port)
	}
	if got := app.Registry.Apps(); !slices.Equal(got, registry.DefaultApps()) {
		t.Fatalf("expected default app registry, got %v", got)
	}
}

func TestLoadLayersSources(t *testing.T) {
	envFile := writeFile(t, ".env", "DATABASE_PORT=7000\nPAGE_SIZE=30\nENV=PROD\n")
	settingsFile := writeFile(t, "settings.yaml", "page_size: 40\nlanguage_code: de-de\ndatabase:\n  host: yaml.internal\n")

	clearEnv(t, "ENV", "DATABASE_HOST", "LANGUAGE_CODE")
	t.Setenv("PAGE_SIZE", "50")

	app, err := Load(Options{
		EnvFile:      envFile,
		SettingsFile: settingsFile,
		Overrides:    map[string]string{"DATABASE_PORT": "6543"},
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	s := app.Settings
	if s.Database.Port != 6543 {
		t.Fatalf("expected override to beat env file, got port %d", s.Database.Port)
	}
	if s.API.PageSize != 50 {
		t.Fatalf("expected process environment to beat env file, got page size %d", s.API.PageSize)
	}
	if s.Env != "PROD" {
		t.Fatalf("expected env file to provide ENV, got %q", s.Env)
	}
	if s.Debug {
		t.Fatalf("expected debug off when env file sets ENV=PROD")
	}
	if s.Database.Host != "yaml.internal" {
		t.Fatalf("expected settings file to provide unshadowed keys, got host %q", s.Database.Host)
	}
	if s.LanguageCode != "de-de" {
		t.Fatalf("expected settings file language code, got %q", s.LanguageCode)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "absent.env")}); err == nil {
		t.Fatalf("expected error for missing env file")
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	_, err := Load(Options{Overrides: map[string]string{"PAGE_SIZE": "0"}})
	if err == nil {
		t.Fatalf("expected validation error for zero page size")
	}
}

func TestLoadCoercionFailureAbortsStartup(t *testing.T) {
	_, err := Load(Options{Overrides: map[string]string{"DATABASE_PORT": "not-a-port"}})
	if err == nil {
		t.Fatalf("expected coercion failure to abort startup")
	}
}

func TestLoadStrictProduction(t *testing.T) {
	clearEnv(t, "SECRET_KEY", "DJANGO_ALLOWED_HOSTS")

	t.Run("fallback secret rejected", func(t *testing.T) {
		_, err := Load(Options{
			Strict: true,
			Overrides: map[string]string{
				"ENV":                  "PROD",
				"DJANGO_ALLOWED_HOSTS": "api.example.com",
			},
		})
		if err == nil {
			t.Fatalf("expected strict mode to reject the fallback secret key")
		}
	})

	t.Run("fully overridden accepted", func(t *testing.T) {
		app, err := Load(Options{
			Strict: true,
			Overrides: map[string]string{
				"ENV":                  "PROD",
				"SECRET_KEY":           "rotated-secret",
				"DJANGO_ALLOWED_HOSTS": "api.example.com",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Settings.Debug {
			t.Fatalf("expected debug off in production")
		}
	})

	t.Run("non-strict allows fallback secret", func(t *testing.T) {
		if _, err := Load(Options{
			Overrides: map[string]string{"ENV": "PROD"},
		}); err != nil {
			t.Fatalf("unexpected error without strict mode: %v", err)
		}
	})
}
