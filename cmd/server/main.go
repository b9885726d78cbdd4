// NextReel - Video Catalog Recommendation and Play-Next Engine
// Copyright 2026 NextReel Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nextreel/nextreel

// Command server runs the NextReel recommendation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nextreel/nextreel/internal/api"
	"github.com/nextreel/nextreel/internal/catalog"
	"github.com/nextreel/nextreel/internal/config"
	"github.com/nextreel/nextreel/internal/logging"
	"github.com/nextreel/nextreel/internal/recommend"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.WithComponent("server")

	store := catalog.NewStore()

	svc, err := recommend.NewService(store, &recommend.Config{
		CollaborativeWeight: cfg.Recommend.CollaborativeWeight,
		ContentWeight:       cfg.Recommend.ContentWeight,
		ColdStartThreshold:  cfg.Recommend.ColdStartThreshold,
		NeighborCount:       cfg.Recommend.NeighborCount,
		VocabularySize:      cfg.Recommend.VocabularySize,
		TrendingWindow:      cfg.Recommend.TrendingWindow,
		RefreshPerMinute:    cfg.Recommend.RefreshPerMinute,
	})
	if err != nil {
		return fmt.Errorf("create recommendation service: %w", err)
	}

	router := api.NewRouter(svc, store, cfg)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}
