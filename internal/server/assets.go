// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"log/slog"

	"codeberg.org/oliverandrich/go-vite-assets/internal/assets"
	"codeberg.org/oliverandrich/go-vite-assets/internal/config"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
)

// NewResolver builds the Vite resolver for cfg. Production URLs go through
// the static storage, which applies hashed names when a static manifest is
// configured.
func NewResolver(cfg *config.Config) (*vite.Resolver, error) {
	storage := assets.NewStorage(cfg.Static.URL)
	if cfg.Static.Manifest != "" {
		var err error
		storage, err = assets.LoadStorage(cfg.Static.URL, cfg.Static.Manifest)
		if err != nil {
			return nil, err
		}
	}

	r, err := vite.New(cfg.Vite, vite.WithStaticURLResolver(storage))
	if err != nil {
		return nil, err
	}

	slog.Debug("assets loaded",
		"dev_mode", cfg.Vite.DevMode,
		"manifest", cfg.Vite.ManifestPath,
		"static_url", cfg.Static.URL,
	)
	return r, nil
}
