// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"codeberg.org/oliverandrich/go-vite-assets/internal/templates"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	page templates.PageData
}

// New creates a new Handlers instance rendering page on the home route.
func New(page templates.PageData) *Handlers {
	return &Handlers{page: page}
}

// Health returns the health status and the asset mode.
func (h *Handlers) Health(c echo.Context) error {
	mode := "unknown"
	if r := templates.Vite(c.Request().Context()); r != nil {
		mode = "production"
		if r.DevMode() {
			mode = "dev"
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"vite":   mode,
	})
}

// Home renders the page shell around the configured entry.
func (h *Handlers) Home(c echo.Context) error {
	return Render(c, http.StatusOK, templates.Page(h.page))
}

// AssetURL answers with the URL of the asset named by the "path" query
// parameter, for scripts that load assets by URL at runtime. The path comes
// from the client, so an unknown asset is a 404 rather than a build mismatch.
func (h *Handlers) AssetURL(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing path")
	}

	url, err := templates.ViteAssetURL(c.Request().Context(), path)
	if errors.Is(err, vite.ErrAssetNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown asset")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// Render renders component into a pooled buffer and sends it with statusCode.
// Nothing is written to the response if rendering fails.
func Render(c echo.Context, statusCode int, component templ.Component) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := component.Render(c.Request().Context(), buf); err != nil {
		return err
	}
	return c.HTMLBlob(statusCode, buf.Bytes())
}
