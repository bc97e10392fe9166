// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// Manifest is a production manifest with shared CSS, a legacy entry and
// legacy polyfills.
const Manifest = `{
	"src/main.ts": {
		"file": "assets/main-4f3a2b1c.js",
		"src": "src/main.ts",
		"isEntry": true,
		"imports": ["_vendor.js"],
		"css": ["assets/main-aaaa1111.css"]
	},
	"_vendor.js": {
		"file": "assets/vendor-bbbb2222.js",
		"css": ["assets/vendor-cccc3333.css"]
	},
	"vite/legacy-polyfills-legacy": {
		"file": "assets/polyfills-legacy-ffff6666.js"
	},
	"src/main-legacy.ts": {
		"file": "assets/main-legacy-abcd1234.js",
		"isEntry": true
	}
}`

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WriteManifest writes content to manifest.json in a temp directory and
// returns its path.
func WriteManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// NewResolver creates a production resolver over content. Output files are
// served under /static/.
func NewResolver(t *testing.T, content string) *vite.Resolver {
	t.Helper()
	cfg := vite.DefaultConfig()
	cfg.ManifestPath = WriteManifest(t, content)
	r, err := vite.New(cfg,
		vite.WithLogger(DiscardLogger()),
		vite.WithStaticURLResolver(vite.StaticURLFunc(func(name string) string {
			return "/static/" + name
		})),
	)
	require.NoError(t, err)
	return r
}

// NewDevResolver creates a dev mode resolver with default settings.
func NewDevResolver(t *testing.T) *vite.Resolver {
	t.Helper()
	cfg := vite.DefaultConfig()
	cfg.DevMode = true
	r, err := vite.New(cfg, vite.WithLogger(DiscardLogger()))
	require.NoError(t, err)
	return r
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}
