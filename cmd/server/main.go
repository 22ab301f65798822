// Brand Chameleon - Brand Adaptation Scoring and Recommendation Engine
// Copyright 2026 Brand Chameleon Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/23am1a0477-a11y/brand-chameleon

// Command server runs the brand adaptation HTTP service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/adapt/strategies"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/api"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/config"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/logging"
	"github.com/23am1a0477-a11y/brand-chameleon/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logging.Init(cfg.Log)
	logger := logging.Logger()

	db, err := openStore(cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close store")
		}
	}()

	svc, err := adapt.NewService(cfg.Adapt, db, db, logger)
	if err != nil {
		return err
	}
	if err := registerStrategies(svc); err != nil {
		return err
	}

	handlers := api.NewHandlers(svc, db)
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(cfg.API, handlers),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runGC(ctx, db, cfg.Store.GCInterval, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore opens the Badger store per config, in-memory or on disk.
func openStore(cfg config.StoreConfig, logger zerolog.Logger) (*store.BadgerStore, error) {
	if cfg.InMemory {
		logger.Warn().Msg("Store running in memory; data is not persisted")
		return store.OpenInMemory(logger)
	}
	return store.Open(cfg.Path, logger)
}

// registerStrategies wires the four candidate generation strategies.
// Registration order fixes generation order.
func registerStrategies(svc *adapt.Service) error {
	for _, s := range []adapt.Strategy{
		strategies.NewVisual(),
		strategies.NewMessaging(),
		strategies.NewContent(),
		strategies.NewAudience(),
	} {
		if err := svc.RegisterStrategy(s); err != nil {
			return err
		}
	}
	return nil
}

// runGC runs periodic value-log garbage collection until ctx ends.
func runGC(ctx context.Context, db *store.BadgerStore, interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logger.Debug().Msg("Running value log GC")
			db.RunGC()
		}
	}
}
