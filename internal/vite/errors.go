// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package vite

import (
	"errors"
	"fmt"
)

var (
	// ErrManifestLoad is returned by New when the manifest cannot be read or parsed.
	ErrManifestLoad = errors.New("cannot load vite manifest")
	// ErrAssetNotFound is returned when a path is missing from the manifest.
	ErrAssetNotFound = errors.New("asset not found in vite manifest")
	// ErrPolyfillNotFound is returned when no manifest key contains the legacy polyfills motif.
	ErrPolyfillNotFound = errors.New("vite legacy polyfills not found")
)

// AssetError reports a manifest lookup miss. It unwraps to ErrAssetNotFound.
type AssetError struct {
	Path         string
	ManifestPath string
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("cannot find %s in vite manifest at %s", e.Path, e.ManifestPath)
}

func (e *AssetError) Unwrap() error {
	return ErrAssetNotFound
}
