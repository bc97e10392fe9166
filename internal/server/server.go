// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"codeberg.org/oliverandrich/go-vite-assets/internal/config"
	"codeberg.org/oliverandrich/go-vite-assets/internal/handlers"
	"codeberg.org/oliverandrich/go-vite-assets/internal/templates"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	SetupLogger(cfg.Log.Level, cfg.Log.Format)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
	)

	resolver, err := NewResolver(cfg)
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	e := New(cfg, resolver)

	return startWithGracefulShutdown(ctx, e, cfg)
}

// New builds the Echo instance serving cfg with resolver.
func New(cfg *config.Config, resolver *vite.Resolver) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler

	setupMiddleware(e, cfg, resolver)
	setupRoutes(e, cfg)

	return e
}

func setupRoutes(e *echo.Echo, cfg *config.Config) {
	h := handlers.New(templates.PageData{
		Title: "Home",
		Entry: cfg.Entry,
	})

	// Static files; absolute static URLs point at a CDN and are not ours to serve.
	if prefix := staticRoute(cfg.Static.URL); prefix != "" {
		e.Static(prefix, cfg.Static.Dir)
	}

	e.GET("/health", h.Health)
	e.GET("/vite/url", h.AssetURL)
	e.GET("/", h.Home)
}

// staticRoute returns the route prefix for a static URL, or "" when the URL
// is absolute.
func staticRoute(staticURL string) string {
	if strings.Contains(staticURL, "://") {
		return ""
	}
	prefix := "/" + strings.Trim(staticURL, "/")
	if prefix == "/" {
		return ""
	}
	return prefix
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("Server running", "url", cfg.Server.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}
