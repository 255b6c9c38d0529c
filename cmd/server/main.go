package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vncsmyrnk/quickpolls/internal/app"
	"github.com/vncsmyrnk/quickpolls/internal/core/services"
)

func main() {
	cfg, err := app.LoadConfig("server", os.Args[1:])
	if err != nil {
		slog.Error("error parsing flags", "error", err)
		os.Exit(1)
	}
	app.SetupLogger(cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := app.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	svc := app.NewServices(db)

	if cfg.Seed {
		if err := services.InsertSampleData(ctx, svc.Users, svc.Polls); err != nil {
			slog.Error("failed to insert sample data", "error", err)
			os.Exit(1)
		}
	}

	handler, err := app.NewHTTPHandler(svc, cfg)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	server := &http.Server{Addr: cfg.Addr, Handler: handler}

	go func() {
		slog.Info("listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
