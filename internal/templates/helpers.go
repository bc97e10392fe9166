// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package templates provides templ components that embed Vite assets.
// Components read the resolver from the render context; see WithVite.
package templates

import (
	"context"
	"errors"
	"io"

	"codeberg.org/oliverandrich/go-vite-assets/internal/ctxkeys"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/a-h/templ"
)

// ErrNoResolver is returned when a component renders without a resolver in context.
var ErrNoResolver = errors.New("no vite resolver in context")

// WithVite returns a copy of ctx carrying r.
func WithVite(ctx context.Context, r *vite.Resolver) context.Context {
	return context.WithValue(ctx, ctxkeys.Vite{}, r)
}

// Vite returns the resolver from the context, or nil.
func Vite(ctx context.Context) *vite.Resolver {
	if r, ok := ctx.Value(ctxkeys.Vite{}).(*vite.Resolver); ok {
		return r
	}
	return nil
}

// ViteAsset renders the script tag and stylesheet links for an entry.
func ViteAsset(path string, attrs ...vite.Attr) templ.Component {
	return resolved(func(r *vite.Resolver) (string, error) {
		return r.AssetTags(path, attrs)
	})
}

// ViteAssetURL returns the URL of a single asset, without its dependencies.
func ViteAssetURL(ctx context.Context, path string) (string, error) {
	r := Vite(ctx)
	if r == nil {
		return "", ErrNoResolver
	}
	return r.AssetURL(path)
}

// ViteHMRClient renders the Vite client script in dev mode.
func ViteHMRClient(attrs ...vite.Attr) templ.Component {
	return resolved(func(r *vite.Resolver) (string, error) {
		return r.HMRClient(attrs), nil
	})
}

// ViteReactRefresh renders the React refresh preamble in dev mode.
func ViteReactRefresh() templ.Component {
	return resolved(func(r *vite.Resolver) (string, error) {
		return r.ReactRefresh(), nil
	})
}

// ViteLegacyPolyfills renders the legacy polyfills script in production.
// Place it at the end of <body>, before any ViteLegacyAsset.
func ViteLegacyPolyfills(attrs ...vite.Attr) templ.Component {
	return resolved(func(r *vite.Resolver) (string, error) {
		return r.LegacyPolyfills(attrs)
	})
}

// ViteLegacyAsset renders the nomodule script for a legacy entry in production.
func ViteLegacyAsset(path string, attrs ...vite.Attr) templ.Component {
	return resolved(func(r *vite.Resolver) (string, error) {
		return r.LegacyAssetTags(path, attrs)
	})
}

func resolved(fn func(r *vite.Resolver) (string, error)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r := Vite(ctx)
		if r == nil {
			return ErrNoResolver
		}
		html, err := fn(r)
		if err != nil {
			return err
		}
		return templ.Raw(html).Render(ctx, w)
	})
}
