// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"codeberg.org/oliverandrich/go-vite-assets/internal/templates"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/labstack/echo/v4"
)

// viteToContext puts the resolver into the request context so templates can
// render asset tags.
func viteToContext(r *vite.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := templates.WithVite(c.Request().Context(), r)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
