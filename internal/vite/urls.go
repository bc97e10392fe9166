// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package vite

import (
	"strings"
)

// StaticURLResolver maps a file name relative to the static root to the URL
// it is served from, e.g. applying a static prefix or a content hash.
type StaticURLResolver interface {
	URL(name string) string
}

// StaticURLFunc adapts a function to StaticURLResolver.
type StaticURLFunc func(name string) string

// URL calls f(name).
func (f StaticURLFunc) URL(name string) string {
	return f(name)
}

// joinURL resolves ref against base like a browser resolves a relative link:
// a ref with a scheme wins, a protocol-relative "//host/..." ref keeps only
// the scheme of base, a ref starting with "/" replaces the path of base,
// anything else replaces what follows the last "/" in base.
// Dot segments are left alone: "../x.js" against "/static/" stays
// "/static/../x.js" and the browser or file server normalizes it.
func joinURL(base, ref string) string {
	if ref == "" {
		return base
	}
	if base == "" || strings.Contains(ref, "://") {
		return ref
	}

	origin, path := splitOrigin(base)
	if strings.HasPrefix(ref, "//") {
		if i := strings.Index(origin, "://"); i >= 0 {
			return origin[:i+1] + ref
		}
		return ref
	}
	if strings.HasPrefix(ref, "/") {
		return origin + ref
	}
	if path == "" {
		path = "/"
	}
	return origin + path[:strings.LastIndex(path, "/")+1] + ref
}

// splitOrigin splits "scheme://host:port/path" into its origin and path.
func splitOrigin(u string) (origin, path string) {
	i := strings.Index(u, "://")
	if i < 0 {
		return "", u
	}
	if j := strings.IndexByte(u[i+3:], '/'); j >= 0 {
		return u[:i+3+j], u[i+3+j:]
	}
	return u, ""
}
