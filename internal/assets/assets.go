// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

//go:build !dev

// Package assets resolves static file names to the URLs they are served from.
package assets

// DevBuild is the default for the Vite dev mode flag. Builds tagged "dev"
// start against the Vite dev server unless told otherwise.
const DevBuild = false
