// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/oliverandrich/go-vite-assets/internal/config"
	"codeberg.org/oliverandrich/go-vite-assets/internal/testutil"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConfig lays out a static directory holding one built chunk and the
// Vite manifest, and returns a production config pointing at it.
func newTestConfig(t *testing.T, entry string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "main-4f3a2b1c.js"), []byte("console.log(1)"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(testutil.Manifest), 0644))

	v := vite.DefaultConfig()
	v.ManifestPath = filepath.Join(dir, "manifest.json")

	return &config.Config{
		Static: config.StaticConfig{URL: "/static/", Dir: dir},
		Vite:   v,
		Entry:  entry,
	}
}

func serve(t *testing.T, cfg *config.Config, path string) *httptest.ResponseRecorder {
	t.Helper()
	r, err := NewResolver(cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	New(cfg, r).ServeHTTP(rec, req)
	return rec
}

func TestServer_Home(t *testing.T) {
	rec := serve(t, newTestConfig(t, "src/main.ts"), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<link rel="stylesheet" href="/static/assets/vendor-cccc3333.css" />`)
	assert.Contains(t, body, `<link rel="stylesheet" href="/static/assets/main-aaaa1111.css" />`)
	assert.Contains(t, body, `src="/static/assets/main-4f3a2b1c.js"`)
}

func TestServer_HomeMissingEntry(t *testing.T) {
	rec := serve(t, newTestConfig(t, "src/unbuilt.ts"), "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "500 Internal Server Error")
	assert.NotContains(t, rec.Body.String(), "<script")
}

func TestServer_Health(t *testing.T) {
	rec := serve(t, newTestConfig(t, "src/main.ts"), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","vite":"production"}`, rec.Body.String())
}

func TestServer_AssetURL(t *testing.T) {
	rec := serve(t, newTestConfig(t, "src/main.ts"), "/vite/url?path=src/main.ts")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/static/assets/main-4f3a2b1c.js", body["url"])
}

func TestServer_AssetURLUnknown(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(NewLogger(&logs, "info", "text"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	rec := serve(t, newTestConfig(t, "src/main.ts"), "/vite/url?path=whatever-a-client-sends.js")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown asset")
	assert.NotContains(t, rec.Body.String(), "manifest.json")
	assert.NotContains(t, logs.String(), "asset resolution failed")
	assert.NotContains(t, logs.String(), "manifest.json")
}

func TestServer_ManifestNotServed(t *testing.T) {
	cfg := newTestConfig(t, "src/main.ts")

	for _, path := range []string{"/static/manifest.json", "/static/./manifest.json", "/static/assets/../manifest.json"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, cfg, path)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.NotContains(t, rec.Body.String(), "src/main.ts")
		})
	}

	rec := serve(t, cfg, "/static/assets/main-4f3a2b1c.js")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_StaticFiles(t *testing.T) {
	rec := serve(t, newTestConfig(t, "src/main.ts"), "/static/assets/main-4f3a2b1c.js")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
}

func TestServer_DevMode(t *testing.T) {
	cfg := newTestConfig(t, "src/main.ts")
	cfg.Vite.DevMode = true
	cfg.Vite.ManifestPath = "does/not/exist.json"

	rec := serve(t, cfg, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `src="http://localhost:3000/static/@vite/client"`)
	assert.Contains(t, rec.Body.String(), `src="http://localhost:3000/static/src/main.ts"`)
}

func TestNewResolver_MissingManifest(t *testing.T) {
	cfg := newTestConfig(t, "src/main.ts")
	cfg.Vite.ManifestPath = filepath.Join(t.TempDir(), "missing.json")

	r, err := NewResolver(cfg)

	assert.Nil(t, r)
	assert.ErrorIs(t, err, vite.ErrManifestLoad)
}

func TestNewResolver_StaticManifest(t *testing.T) {
	cfg := newTestConfig(t, "src/main.ts")
	cfg.Static.Manifest = filepath.Join(t.TempDir(), "staticfiles.json")
	require.NoError(t, os.WriteFile(cfg.Static.Manifest, []byte(`{"paths": {
		"assets/main-4f3a2b1c.js": "assets/main-4f3a2b1c.0a1b2c3d4e5f.js"
	}}`), 0644))

	r, err := NewResolver(cfg)
	require.NoError(t, err)

	url, err := r.AssetURL("src/main.ts")
	require.NoError(t, err)
	assert.Equal(t, "/static/assets/main-4f3a2b1c.0a1b2c3d4e5f.js", url)
}

func TestNewResolver_BadStaticManifest(t *testing.T) {
	cfg := newTestConfig(t, "src/main.ts")
	cfg.Static.Manifest = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewResolver(cfg)

	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "json")

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "value", line["key"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug", "text")

	logger.Debug("manifest loaded", "entries", 3)

	assert.Contains(t, buf.String(), "manifest loaded")
	assert.Contains(t, buf.String(), "entries=3")
}
