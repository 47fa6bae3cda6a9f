package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskvault/task-api/internal/api"
	"github.com/taskvault/task-api/internal/infrastructure/db/postgres"
	"github.com/taskvault/task-api/internal/pkg/config"
	"github.com/taskvault/task-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})
	log.Info().Str("env", cfg.Env).Bool("debug", cfg.Debug).Msg("starting task-api")

	if err := postgres.Migrate(cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}
	log.Info().Msg("database migrations applied")

	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Database.URL,
		MinConns: cfg.Database.MinConns,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	e, err := api.NewRouter(cfg, pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
