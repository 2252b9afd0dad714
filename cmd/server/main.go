package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/adsmedia/mailbridge/internal/config"
	"github.com/adsmedia/mailbridge/internal/handler"
	"github.com/adsmedia/mailbridge/internal/logger"
	"github.com/adsmedia/mailbridge/internal/middleware"
	"github.com/adsmedia/mailbridge/internal/provider"
	"github.com/adsmedia/mailbridge/internal/router"
)

const version = "0.1.0"

func main() {
	// .env is optional
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", version).Msg("starting mailbridge server")

	// Resolve the API key and build the one client this process uses
	client, err := provider.NewClient(cfg.ADSMedia)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize ADSMedia client")
	}
	log.Info().
		Str("base_url", client.BaseURL()).
		Str("from_name", client.DefaultFromName()).
		Dur("timeout", cfg.ADSMedia.Timeout).
		Msg("ADSMedia client initialized")

	h := handler.New(log, client, version)
	mw := middleware.New(log)
	r := router.New(h, mw)

	// Create HTTP server
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
