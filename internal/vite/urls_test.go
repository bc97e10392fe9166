// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package vite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		base     string
		ref      string
		expected string
	}{
		{"/static/", "main.js", "/static/main.js"},
		{"/static/", "vite", "/static/vite"},
		{"/static/", "", "/static/"},
		{"/static/", "/other/main.js", "/other/main.js"},
		{"/static", "main.js", "/main.js"},
		{"", "assets/main.js", "assets/main.js"},
		{"assets/", "main.js", "assets/main.js"},
		{"vite", "main.js", "main.js"},
		{"http://localhost:3000", "/static/main.js", "http://localhost:3000/static/main.js"},
		{"http://localhost:3000", "main.js", "http://localhost:3000/main.js"},
		{"http://localhost:3000/base/", "main.js", "http://localhost:3000/base/main.js"},
		{"http://localhost:3000/base/", "/main.js", "http://localhost:3000/main.js"},
		{"/static/", "https://cdn.example.com/main.js", "https://cdn.example.com/main.js"},
		{"/static/", "//cdn.example.com/x.js", "//cdn.example.com/x.js"},
		{"https://example.com/static/", "//cdn.example.com/x.js", "https://cdn.example.com/x.js"},
		{"http://localhost:3000", "//cdn.example.com/x.js", "http://cdn.example.com/x.js"},
		{"/static/", "../x.js", "/static/../x.js"},
		{"/static/assets/", "./x.js", "/static/assets/./x.js"},
		{"http://localhost:3000/static/", "../x.js", "http://localhost:3000/static/../x.js"},
	}

	for _, tt := range tests {
		t.Run(tt.base+"+"+tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.expected, joinURL(tt.base, tt.ref))
		})
	}
}

func TestStaticURLFunc(t *testing.T) {
	var s StaticURLResolver = StaticURLFunc(func(name string) string {
		return "/cdn/" + name
	})

	assert.Equal(t, "/cdn/main.js", s.URL("main.js"))
}
