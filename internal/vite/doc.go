// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package vite turns a Vite build manifest into the script and link tags a
// server-rendered page needs.
//
// In dev mode every tag points at the Vite dev server and no manifest is
// read. In production mode the manifest is loaded once by New and every
// lookup afterwards is served from memory. A Resolver is never mutated after
// construction and is safe for concurrent use.
package vite
