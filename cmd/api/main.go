package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/certflow/certification-system/internal/api"
	"github.com/certflow/certification-system/internal/infrastructure/config"
	"github.com/certflow/certification-system/internal/infrastructure/memory"
	"github.com/certflow/certification-system/pkg/logger"
)

// @title        Certification Request API
// @version      1.0
// @description  Mock backend for authentication and certification-request approval workflows.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	directory, err := memory.NewUserDirectory(memory.SeedAccounts())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed user directory")
	}
	store := memory.NewCertificationStore(memory.SeedRequests())

	e := api.NewRouter(cfg, directory, store, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
