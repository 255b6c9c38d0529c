package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/vncsmyrnk/quickpolls/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/quickpolls/internal/app"
)

// Usage: migrations [flags] [name]
//
// Without a name every up migration is applied. A name such as "init.down"
// applies the single embedded file whose name ends with it.
func main() {
	cfg, err := app.LoadConfig("migrations", os.Args[1:])
	if err != nil {
		slog.Error("error parsing configuration", "error", err)
		os.Exit(1)
	}
	app.SetupLogger(cfg.LogFormat)

	ctx := context.Background()
	db, err := sqlstore.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if len(cfg.Args) == 0 {
		if err := sqlstore.Migrate(ctx, db); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		slog.Info("all migrations applied")
		return
	}

	name, err := migrationFileName(cfg.Args[0])
	if err != nil {
		slog.Error("migration lookup failed", "error", err)
		os.Exit(1)
	}
	if err := sqlstore.ApplyMigration(ctx, db, name); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migration file executed", "name", name)
}

func migrationFileName(migrationName string) (string, error) {
	for _, direction := range []string{"up", "down"} {
		names, err := sqlstore.MigrationNames(direction)
		if err != nil {
			return "", err
		}
		for _, name := range names {
			if strings.HasSuffix(name, migrationName+".sql") {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("migration file %q not found", migrationName)
}
