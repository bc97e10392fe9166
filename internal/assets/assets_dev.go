// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

//go:build dev

// Package assets resolves static file names to the URLs they are served from.
// In development builds the Vite dev server is the default asset source.
package assets

// DevBuild is the default for the Vite dev mode flag.
const DevBuild = true
