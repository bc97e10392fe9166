// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package vite

// Config controls how the Resolver builds URLs.
type Config struct { //nolint:govet // fieldalignment not critical for config structs
	DevMode           bool
	DevServerProtocol string
	DevServerHost     string
	DevServerPort     int

	// StaticURL is the URL static files are served under, e.g. "/static/".
	// Only used for dev server URLs; production URLs get it from the
	// StaticURLResolver.
	StaticURL       string
	StaticURLPrefix string

	ManifestPath         string
	LegacyPolyfillsMotif string
	WSClientURL          string
	ReactRefreshURL      string
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DevServerProtocol:    "http",
		DevServerHost:        "localhost",
		DevServerPort:        3000,
		StaticURL:            "/static/",
		ManifestPath:         "static/.vite/manifest.json",
		LegacyPolyfillsMotif: "polyfills",
		WSClientURL:          "@vite/client",
		ReactRefreshURL:      "@react-refresh",
	}
}
