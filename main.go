package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"library/cache"
	"library/config"
	"library/db"
	"library/service"
)

const SHUTDOWN_TIMEOUT = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("library service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := config.InitLogger(cfg.LogLevel)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	library, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create library (backend=%s): %w", cfg.StoreBackend, err)
	}

	cacher, cacheCloser, err := cache.New(cfg)
	if err != nil {
		return fmt.Errorf("create activity cache: %w", err)
	}
	defer cacheCloser.Close()

	s := service.NewService(library, cacher, cfg.ErrorMode == config.ERROR_MODE_STATUS, logger)
	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: service.NewHandler(s, cfg.PublicDir),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("library service listening", "addr", cfg.Addr(), "store", cfg.StoreBackend, "error_mode", cfg.ErrorMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}
