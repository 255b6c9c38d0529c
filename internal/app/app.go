// Package app wires the store, services and transport together for the
// binaries under cmd.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	handler "github.com/vncsmyrnk/quickpolls/internal/adapters/handler/http"
	"github.com/vncsmyrnk/quickpolls/internal/adapters/idgen"
	"github.com/vncsmyrnk/quickpolls/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/quickpolls/internal/config"
	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
	"github.com/vncsmyrnk/quickpolls/internal/core/services"
)

// LoadConfig reads .env when present, then parses args.
func LoadConfig(name string, args []string) (config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config.Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return config.Parse(name, args)
}

// SetupLogger installs the default slog logger in the configured format.
func SetupLogger(format string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

// OpenStore connects to the configured database and applies the schema.
func OpenStore(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := sqlstore.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := sqlstore.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	slog.Info("database schema ready", "driver", cfg.DatabaseDriver)
	return db, nil
}

type Services struct {
	Users       ports.UserService
	Polls       ports.PollService
	Submissions ports.SubmissionService
	Results     ports.ResultService
}

func NewServices(db *sql.DB) *Services {
	ids := idgen.NewUUIDGenerator()
	pollRepo := sqlstore.NewPollRepository(db)

	return &Services{
		Users:       services.NewUserService(sqlstore.NewUserRepository(db), ids),
		Polls:       services.NewPollService(pollRepo, ids),
		Submissions: services.NewSubmissionService(pollRepo, sqlstore.NewSubmissionRepository(db, ids), ids),
		Results:     services.NewResultService(pollRepo, sqlstore.NewPollResultRepository(db)),
	}
}

func (s *Services) Facade() *facade.Facade {
	return facade.New(s.Users, s.Polls, s.Submissions, s.Results)
}

// NewHTTPHandler builds the HTTP surface. The config must carry a session
// secret.
func NewHTTPHandler(svc *Services, cfg config.Config) (http.Handler, error) {
	if err := cfg.RequireSecret(); err != nil {
		return nil, err
	}
	sessions := services.NewSessionService(cfg.JWTSecret)
	return handler.NewHandler(svc.Facade(), sessions, handler.Config{
		AllowedOrigins: cfg.AllowedOrigins,
		CookieDomain:   cfg.CookieDomain,
	}), nil
}
