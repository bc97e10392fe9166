// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ErrStorageManifest is returned when a static files manifest cannot be loaded.
var ErrStorageManifest = errors.New("cannot load static files manifest")

// staticManifest is the hashed-name manifest written by collectstatic-style
// tools: {"paths": {"assets/main.js": "assets/main.3f2a1b9c0d4e.js"}}.
type staticManifest struct {
	Paths map[string]string `json:"paths"`
}

// Storage maps names relative to the static root to served URLs.
// It satisfies vite.StaticURLResolver.
type Storage struct {
	baseURL string
	hashed  map[string]string
}

// NewStorage returns a Storage that joins names onto baseURL unchanged.
func NewStorage(baseURL string) *Storage {
	return &Storage{baseURL: baseURL}
}

// LoadStorage returns a Storage that rewrites names through the hashed-name
// manifest at manifestPath before joining them onto baseURL.
// Names missing from the manifest are served unhashed.
func LoadStorage(baseURL, manifestPath string) (*Storage, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrStorageManifest, manifestPath, err)
	}

	var meta staticManifest
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrStorageManifest, manifestPath, err)
	}

	slog.Debug("loaded static files manifest", "path", manifestPath, "files", len(meta.Paths))

	return &Storage{baseURL: baseURL, hashed: meta.Paths}, nil
}

// URL returns the URL name is served from.
func (s *Storage) URL(name string) string {
	// Absolute URLs (e.g. a CDN prefix) pass through.
	if strings.Contains(name, "://") {
		return name
	}

	name = strings.TrimPrefix(name, "/")
	if hashed, ok := s.hashed[name]; ok {
		name = hashed
	}

	if s.baseURL == "" {
		return "/" + name
	}
	return strings.TrimSuffix(s.baseURL, "/") + "/" + name
}
