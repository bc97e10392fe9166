// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"codeberg.org/oliverandrich/go-vite-assets/internal/config"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func setupMiddleware(e *echo.Echo, cfg *config.Config, resolver *vite.Resolver) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())
	e.Use(hideManifest(cfg))
	e.Use(staticCacheHeaders(cfg, resolver))
	e.Use(viteToContext(resolver))
}

// requestLogger returns middleware that logs requests using slog.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "request", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			}

			return nil
		},
	})
}

// staticCacheHeaders marks build output as immutable. A file is build
// output when the Vite manifest lists it or its name carries a content hash.
func staticCacheHeaders(cfg *config.Config, resolver *vite.Resolver) echo.MiddlewareFunc {
	route := staticRoute(cfg.Static.URL)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if route == "" {
				return next(c)
			}

			path := c.Request().URL.Path
			name, ok := strings.CutPrefix(path, route+"/")
			if !ok {
				return next(c)
			}

			if resolver.DevMode() {
				c.Response().Header().Set("Cache-Control", "no-cache")
			} else if isManifestOutput(resolver.Manifest(), cfg.Vite.StaticURLPrefix, name) || isHashedAsset(path) {
				c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			}
			return next(c)
		}
	}
}

// hideManifest answers 404 for the Vite manifest when it lives inside the
// served static directory. It lists every source path of the frontend.
func hideManifest(cfg *config.Config) echo.MiddlewareFunc {
	route := manifestRoute(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if route != "" && path.Clean(c.Request().URL.Path) == route {
				return echo.ErrNotFound
			}
			return next(c)
		}
	}
}

// manifestRoute returns the URL path the manifest would be served under, or
// "" when the static directory does not contain it.
func manifestRoute(cfg *config.Config) string {
	prefix := staticRoute(cfg.Static.URL)
	if prefix == "" || cfg.Static.Dir == "" || cfg.Vite.ManifestPath == "" {
		return ""
	}

	dir, err := filepath.Abs(cfg.Static.Dir)
	if err != nil {
		return ""
	}
	manifest, err := filepath.Abs(cfg.Vite.ManifestPath)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(dir, manifest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return prefix + "/" + filepath.ToSlash(rel)
}

func isManifestOutput(m *vite.Manifest, prefix, name string) bool {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		var ok bool
		if name, ok = strings.CutPrefix(name, prefix+"/"); !ok {
			return false
		}
	}
	return m.HasOutput(name)
}

// isHashedAsset checks if the path contains a hash pattern like .abc12345.
// or the 12 character .0a1b2c3d4e5f. written by static file hashing.
func isHashedAsset(path string) bool {
	parts := strings.Split(path, ".")
	if len(parts) < 3 {
		return false
	}

	hash := parts[len(parts)-2]
	if len(hash) != 8 && len(hash) != 12 {
		return false
	}
	for _, c := range hash {
		isDigit := c >= '0' && c <= '9'
		isHexLetter := c >= 'a' && c <= 'f'
		if !isDigit && !isHexLetter {
			return false
		}
	}
	return true
}
