package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/breakeven-sim/simulator/internal/config"
	"github.com/breakeven-sim/simulator/internal/db"
	"github.com/breakeven-sim/simulator/internal/logger"
	"github.com/breakeven-sim/simulator/internal/migrations"
	"github.com/breakeven-sim/simulator/internal/presets"
	"github.com/breakeven-sim/simulator/internal/scenario"
	"github.com/breakeven-sim/simulator/internal/seed"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	base, err := logger.New(cfg.LogLevel, cfg.IsDev())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	os.Exit(finish(base, run(cfg, base)))
}

// finish logs a run failure and flushes the logger before the process exits.
func finish(base *zap.Logger, err error) int {
	code := 0
	if err != nil {
		base.Error("server stopped", zap.Error(err))
		code = 1
	}
	_ = base.Sync()
	return code
}

func run(cfg config.Config, base *zap.Logger) error {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrations.Up(database, cfg.MigrationsDir); err != nil {
		return err
	}

	stats, err := seed.Run(database, presets.All())
	if err != nil {
		return err
	}
	base.Info("presets seeded", zap.Int("inserts", stats.Inserts), zap.Int("updates", stats.Updates))

	srv := newServer(
		scenario.NewSQLiteRepository(database, cfg.MaxScenarios),
		dbPresets{db: database},
		logger.Named(base, "http"),
	)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(cfg.AllowedOrigins()),
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		base.Info("listening", zap.String("addr", httpServer.Addr), zap.String("env", cfg.AppEnv))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		base.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
