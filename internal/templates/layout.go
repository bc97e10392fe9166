// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PageData describes a page shell around a Vite entry.
type PageData struct {
	Title        string
	Entry        string
	LegacyEntry  string // optional @vitejs/plugin-legacy entry, production only
	ReactRefresh bool
	Body         templ.Component // defaults to an empty #app mount point
}

// Page renders a full HTML document loading p.Entry.
func Page(p PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := []templ.Component{}
		if p.ReactRefresh {
			head = append(head, ViteReactRefresh())
		}
		head = append(head, ViteHMRClient(), ViteAsset(p.Entry))

		body := p.Body
		if body == nil {
			body = templ.Raw(`<div id="app"></div>`)
		}
		tail := []templ.Component{body}
		if p.LegacyEntry != "" {
			tail = append(tail, ViteLegacyPolyfills(), ViteLegacyAsset(p.LegacyEntry))
		}

		if _, err := fmt.Fprintf(w, "<!doctype html>\n<html lang=\"en\">\n<head>\n"+
			"<meta charset=\"utf-8\">\n"+
			"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"+
			"<title>%s</title>\n", templ.EscapeString(p.Title)); err != nil {
			return err
		}
		if err := renderLines(ctx, w, head); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
			return err
		}
		if err := renderLines(ctx, w, tail); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// ErrorPage renders a bare error document. It needs no resolver so it still
// works when asset resolution is what failed.
func ErrorPage(code int, title, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<!doctype html>\n<html lang=\"en\">\n<head>\n"+
			"<meta charset=\"utf-8\">\n<title>%d %s</title>\n</head>\n<body>\n"+
			"<h1>%d %s</h1>\n<p>%s</p>\n</body>\n</html>\n",
			code, templ.EscapeString(title), code, templ.EscapeString(title), templ.EscapeString(message))
		return err
	})
}

func renderLines(ctx context.Context, w io.Writer, components []templ.Component) error {
	for _, c := range components {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
