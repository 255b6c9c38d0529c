// Package config reads server settings from command line flags, falling back
// to environment variables and then to defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vncsmyrnk/quickpolls/internal/adapters/repository/sqlstore"
)

type Config struct {
	Addr           string
	DatabaseDriver string
	DatabaseURL    string
	JWTSecret      string
	AllowedOrigins []string
	CookieDomain   string
	Seed           bool
	LogFormat      string

	// Args holds the positional arguments left after the flags.
	Args []string
}

const (
	defaultAddr        = "0.0.0.0:8080"
	defaultSQLiteURL   = "file:quickpolls.db"
	defaultLogFormat   = "text"
	defaultOriginsList = "*"
)

// Parse reads the flags in args. name is used as the flag set name in usage
// output.
func Parse(name string, args []string) (Config, error) {
	var cfg Config
	var origins, seed string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", "", "HTTP listen address (env HTTP_ADDR)")
	fs.StringVar(&cfg.DatabaseDriver, "db-driver", "", "Database driver: sqlite or postgres (env DATABASE_DRIVER)")
	fs.StringVar(&cfg.DatabaseURL, "db-url", "", "Database connection string (env DATABASE_URL)")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", "", "Session signing secret (prefer env JWT_SECRET)")
	fs.StringVar(&origins, "allowed-origins", "", "Comma separated CORS origins (env ALLOWED_ORIGINS)")
	fs.StringVar(&cfg.CookieDomain, "cookie-domain", "", "Session cookie domain (env COOKIE_DOMAIN)")
	fs.StringVar(&seed, "seed", "", "Insert sample data on startup (env SEED_SAMPLE_DATA)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format: text or json (env LOG_FORMAT)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()

	cfg.Addr = firstNonEmpty(cfg.Addr, os.Getenv("HTTP_ADDR"), defaultAddr)
	cfg.DatabaseDriver = firstNonEmpty(cfg.DatabaseDriver, os.Getenv("DATABASE_DRIVER"), sqlstore.DriverSQLite)
	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = firstNonEmpty(cfg.JWTSecret, os.Getenv("JWT_SECRET"))
	cfg.CookieDomain = firstNonEmpty(cfg.CookieDomain, os.Getenv("COOKIE_DOMAIN"))
	cfg.LogFormat = firstNonEmpty(cfg.LogFormat, os.Getenv("LOG_FORMAT"), defaultLogFormat)
	cfg.AllowedOrigins = splitList(firstNonEmpty(origins, os.Getenv("ALLOWED_ORIGINS"), defaultOriginsList))

	if s := firstNonEmpty(seed, os.Getenv("SEED_SAMPLE_DATA")); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, fmt.Errorf("invalid seed value %q", s)
		}
		cfg.Seed = v
	}

	switch cfg.DatabaseDriver {
	case sqlstore.DriverSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultSQLiteURL
		}
	case sqlstore.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -db-url or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// RequireSecret fails when no session signing secret was configured.
func (c Config) RequireSecret() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET required (use -jwt-secret or JWT_SECRET env)")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
