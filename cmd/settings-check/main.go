package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/coreroot/backend/internal/bootstrap"
	"github.com/coreroot/backend/internal/logging"
)

func main() {
	cli := kingpin.New("settings-check", "Resolves and validates the backend settings from layered sources")
	envFile := cli.Flag("env-file", "Path to a key=value env file consulted below the process environment").String()
	settingsFile := cli.Flag("settings", "Path to an optional YAML settings file (lowest precedence)").String()
	overrides := cli.Flag("set", "Explicit KEY=VALUE override (highest precedence, repeatable)").StringMap()
	strict := cli.Flag("strict", "Refuse configurations that are unsafe for production").Bool()

	kingpin.MustParse(cli.Parse(os.Args[1:]))

	app, err := bootstrap.Load(bootstrap.Options{
		EnvFile:      *envFile,
		SettingsFile: *settingsFile,
		Overrides:    *overrides,
		Strict:       *strict,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings resolution failed: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(app.Settings.Debug)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	report(logger, app)
}

// report logs the resolved snapshot with secret material redacted.
func report(logger *zap.Logger, app *bootstrap.App) {
	s := app.Settings

	logger.Info("settings resolved",
		zap.String("env", s.Env),
		zap.Bool("debug", s.Debug),
		zap.String("secret_key", redact(s.SecretKey)),
		zap.Strings("allowed_hosts", s.AllowedHosts),
		zap.Strings("cors_allowed_origins", s.CORSAllowedOrigins),
		zap.String("database_addr", s.Database.Addr()),
		zap.String("database_name", s.Database.Name),
		zap.String("database_user", s.Database.User),
		zap.String("database_password", redact(s.Database.Password)),
		zap.String("media_root", s.Media.MediaRoot()),
		zap.String("media_url", s.Media.MediaURL),
		zap.String("static_url", s.Media.StaticURL),
		zap.Int("page_size", s.API.PageSize),
		zap.Int("throttle_rps", s.API.ThrottleRPS),
		zap.String("language_code", s.LanguageCode),
		zap.String("time_zone", s.TimeZone),
		zap.Strings("installed_apps", app.Registry.Apps()),
		zap.Strings("middleware", app.Registry.Middleware()),
	)
}

// redact keeps just enough of a secret to tell which one is configured.
func redact(secret string) string {
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + strings.Repeat("*", 6) + secret[len(secret)-2:]
}
