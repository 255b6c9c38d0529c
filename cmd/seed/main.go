package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/vncsmyrnk/quickpolls/internal/app"
	"github.com/vncsmyrnk/quickpolls/internal/core/services"
)

func main() {
	cfg, err := app.LoadConfig("seed", os.Args[1:])
	if err != nil {
		slog.Error("error parsing flags", "error", err)
		os.Exit(1)
	}
	app.SetupLogger(cfg.LogFormat)

	ctx := context.Background()
	db, err := app.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	svc := app.NewServices(db)
	if err := services.InsertSampleData(ctx, svc.Users, svc.Polls); err != nil {
		slog.Error("failed to insert sample data", "error", err)
		os.Exit(1)
	}
}
