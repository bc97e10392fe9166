// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"codeberg.org/oliverandrich/go-vite-assets/internal/templates"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors as HTML pages. Asset resolution failures mean
// the manifest and the templates disagree, so they are logged and answered
// with 500, as is any other unexpected error.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Something went wrong."

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	case errors.Is(err, vite.ErrAssetNotFound), errors.Is(err, vite.ErrPolyfillNotFound):
		slog.Error("asset resolution failed", "uri", c.Request().RequestURI, "error", err)
	default:
		slog.Error("unhandled error", "uri", c.Request().RequestURI, "error", err)
	}

	title := http.StatusText(code)
	if title == "" {
		title = "Error"
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if renderErr := Render(c, code, templates.ErrorPage(code, title, message)); renderErr != nil {
		slog.Error("failed to render error page", "error", renderErr)
	}
}
