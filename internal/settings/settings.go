// Package settings builds the immutable configuration snapshot consumed by
// the backend bootstrap. Values resolve from layered sources with permissive
// local-development defaults; production deployments are expected to override
// the secret material and host allow-list (see CheckProduction).
package settings

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/coreroot/backend/internal/resolver"
)

const envProduction = "PROD"

// fallbackSecretKey signs sessions in local development only. CheckProduction
// refuses to run with it when the environment name says PROD.
const fallbackSecretKey = "qkl+xdr8aimpf-&x(mi7)dwt^-q77aji#j*d#02-5usa32r9!y"

// Well-known configuration keys.
var (
	keyEnv           = resolver.Key{Name: "ENV", Kind: resolver.KindString}
	keySecretKey     = resolver.Key{Name: "SECRET_KEY", Kind: resolver.KindString, Default: fallbackSecretKey}
	keyAllowedHosts  = resolver.Key{Name: "DJANGO_ALLOWED_HOSTS", Kind: resolver.KindList}
	keyCORSOrigins   = resolver.Key{Name: "CORS_ALLOWED_ORIGINS", Kind: resolver.KindList}
	keyDBName        = resolver.Key{Name: "DATABASE_NAME", Kind: resolver.KindString, Default: "coredb"}
	keyDBUser        = resolver.Key{Name: "DATABASE_USER", Kind: resolver.KindString, Default: "core"}
	keyDBPassword    = resolver.Key{Name: "DATABASE_PASSWORD", Kind: resolver.KindString, Default: "wCh29&HE&T83"}
	keyDBHost        = resolver.Key{Name: "DATABASE_HOST", Kind: resolver.KindString, Default: "localhost"}
	keyDBPort        = resolver.Key{Name: "DATABASE_PORT", Kind: resolver.KindInt, Default: "5432"}
	keyBaseDir       = resolver.Key{Name: "BASE_DIR", Kind: resolver.KindString, Default: "."}
	keyMediaURL      = resolver.Key{Name: "MEDIA_URL", Kind: resolver.KindString, Default: "/media/"}
	keyStaticURL     = resolver.Key{Name: "STATIC_URL", Kind: resolver.KindString, Default: "/static/"}
	keyPageSize      = resolver.Key{Name: "PAGE_SIZE", Kind: resolver.KindInt, Default: "10"}
	keyThrottleRPS   = resolver.Key{Name: "THROTTLE_RPS", Kind: resolver.KindInt, Default: "0"}
	keyThrottleBurst = resolver.Key{Name: "THROTTLE_BURST", Kind: resolver.KindInt, Default: "0"}
	keyLanguageCode  = resolver.Key{Name: "LANGUAGE_CODE", Kind: resolver.KindString, Default: "en-us"}
	keyTimeZone      = resolver.Key{Name: "TIME_ZONE", Kind: resolver.KindString, Default: "UTC"}
)

// Fallback lists for the list-typed keys.
var (
	defaultAllowedHosts = []string{"*"}
	defaultCORSOrigins  = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
)

// Settings is the resolved configuration snapshot. It is created once at
// startup and never mutated afterwards, so any number of goroutines may read
// it concurrently.
type Settings struct {
	Env   string
	Debug bool

	SecretKey          string
	AllowedHosts       []string
	CORSAllowedOrigins []string

	Database Database
	Media    Media
	API      API

	LanguageCode string
	TimeZone     string
}

// Load resolves the full snapshot from r. Debug is derived from Env rather
// than read from its own key, so the two can never disagree: only an exact
// PROD environment name turns debug off.
func Load(r *resolver.Resolver) (*Settings, error) {
	l := loader{r: r}

	s := &Settings{
		Env:                l.str(keyEnv),
		SecretKey:          l.str(keySecretKey),
		AllowedHosts:       l.list(keyAllowedHosts, defaultAllowedHosts),
		CORSAllowedOrigins: l.list(keyCORSOrigins, defaultCORSOrigins),
		Database: Database{
			Name:     l.str(keyDBName),
			User:     l.str(keyDBUser),
			Password: l.str(keyDBPassword),
			Host:     l.str(keyDBHost),
			Port:     l.integer(keyDBPort),
		},
		Media: Media{
			BaseDir:   l.str(keyBaseDir),
			MediaURL:  l.str(keyMediaURL),
			StaticURL: l.str(keyStaticURL),
		},
		API: API{
			PageSize:      l.integer(keyPageSize),
			ThrottleRPS:   l.integer(keyThrottleRPS),
			ThrottleBurst: l.integer(keyThrottleBurst),
		},
		LanguageCode: l.str(keyLanguageCode),
		TimeZone:     l.str(keyTimeZone),
	}
	if l.err != nil {
		return nil, l.err
	}

	s.Debug = s.Env != envProduction
	return s, nil
}

// loader resolves keys with a sticky first error so Load reads as a single
// struct literal.
type loader struct {
	r   *resolver.Resolver
	err error
}

func (l *loader) str(key resolver.Key) string {
	if l.err != nil {
		return ""
	}
	v, err := l.r.String(key)
	if err != nil {
		l.err = err
	}
	return v
}

func (l *loader) integer(key resolver.Key) int {
	if l.err != nil {
		return 0
	}
	v, err := l.r.Int(key)
	if err != nil {
		l.err = err
	}
	return v
}

func (l *loader) list(key resolver.Key, fallback []string) []string {
	if l.err != nil {
		return nil
	}
	v, err := l.r.List(key, fallback)
	if err != nil {
		l.err = err
	}
	return v
}

// Validate checks the resolved snapshot for values no deployment should run
// with. All failures are reported together.
func (s *Settings) Validate() error {
	var errs []error

	if s.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY must not be empty"))
	}
	if len(s.AllowedHosts) == 0 {
		errs = append(errs, errors.New("DJANGO_ALLOWED_HOSTS must contain at least one host"))
	}
	if s.Database.Port < 1 || s.Database.Port > 65535 {
		errs = append(errs, fmt.Errorf("DATABASE_PORT must be in 1..65535, got %d", s.Database.Port))
	}
	if s.API.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("PAGE_SIZE must be positive, got %d", s.API.PageSize))
	}
	if s.API.ThrottleRPS < 0 || s.API.ThrottleBurst < 0 {
		errs = append(errs, errors.New("THROTTLE_RPS and THROTTLE_BURST must be >= 0"))
	}
	for _, origin := range s.CORSAllowedOrigins {
		if err := validateOrigin(origin); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// CheckProduction rejects configurations that are unsafe to run when the
// environment name is PROD: the development fallback secret key and the
// wildcard host allow-list must both be overridden.
func (s *Settings) CheckProduction() error {
	if s.Env != envProduction {
		return nil
	}
	if s.SecretKey == fallbackSecretKey {
		return errors.New("SECRET_KEY still has its development fallback value; set a unique secret in production")
	}
	for _, host := range s.AllowedHosts {
		if host == "*" {
			return errors.New("DJANGO_ALLOWED_HOSTS allows any host; set an explicit allow-list in production")
		}
	}
	return nil
}

func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q is not a valid origin", origin)
	}
	return nil
}

// Database holds relational database connection parameters.
type Database struct {
	Name     string
	User     string
	Password string
	Host     string
	Port     int
}

// Addr returns host:port for the database server.
func (d Database) Addr() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// DSN returns a Postgres connection string in keyword form.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Media holds the URL prefixes and filesystem roots for served assets.
type Media struct {
	BaseDir   string
	MediaURL  string
	StaticURL string
}

// MediaRoot returns the directory uploaded files are stored under.
func (m Media) MediaRoot() string {
	return filepath.Join(m.BaseDir, "uploads")
}

// MediaPath returns the on-disk path for an uploaded file name.
func (m Media) MediaPath(name string) string {
	return filepath.Join(m.MediaRoot(), name)
}
