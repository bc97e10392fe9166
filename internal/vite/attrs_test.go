// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package vite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrsMerge(t *testing.T) {
	defaults := Attrs{A("type", "module"), A("crossorigin", "")}

	t.Run("extra overrides in place", func(t *testing.T) {
		merged := defaults.Merge(Attrs{A("crossorigin", "anonymous")})

		assert.Equal(t, Attrs{A("type", "module"), A("crossorigin", "anonymous")}, merged)
	})

	t.Run("new keys are appended", func(t *testing.T) {
		merged := defaults.Merge(Attrs{A("defer", ""), A("nonce", "abc")})

		assert.Equal(t, Attrs{
			A("type", "module"),
			A("crossorigin", ""),
			A("defer", ""),
			A("nonce", "abc"),
		}, merged)
	})

	t.Run("last duplicate wins", func(t *testing.T) {
		merged := defaults.Merge(Attrs{A("nonce", "a"), A("nonce", "b")})

		v, ok := merged.Get("nonce")
		assert.True(t, ok)
		assert.Equal(t, "b", v)
		assert.Len(t, merged, 3)
	})

	t.Run("defaults are not modified", func(t *testing.T) {
		_ = defaults.Merge(Attrs{A("type", "text/javascript")})

		v, _ := defaults.Get("type")
		assert.Equal(t, "module", v)
	})

	t.Run("nil extra", func(t *testing.T) {
		assert.Equal(t, defaults, defaults.Merge(nil))
	})
}

func TestAttrsString(t *testing.T) {
	attrs := Attrs{A("type", "module"), A("data-x", `a"b<c`)}

	assert.Equal(t, `type="module" data-x="a&#34;b&lt;c"`, attrs.String())
	assert.Empty(t, Attrs(nil).String())
}

func TestAttrsStringEscapesValuesOnly(t *testing.T) {
	attrs := Attrs{A("data-x", `"><script>alert(1)</script>`), A("data-ok", "a&b")}

	assert.Equal(t,
		`data-x="&#34;&gt;&lt;script&gt;alert(1)&lt;/script&gt;" data-ok="a&amp;b"`,
		attrs.String())
	assert.Equal(t, `on"x="1"`, Attrs{A(`on"x`, "1")}.String(), "keys are written as given")
}

func TestScriptTag(t *testing.T) {
	assert.Equal(t,
		`<script type="module" src="/static/main.js"></script>`,
		scriptTag("/static/main.js", Attrs{A("type", "module")}),
	)
	assert.Equal(t, `<script src="/a.js?x=1&amp;y=2"></script>`, scriptTag("/a.js?x=1&y=2", nil))
}

func TestStylesheetTag(t *testing.T) {
	assert.Equal(t, `<link rel="stylesheet" href="/static/main.css" />`, stylesheetTag("/static/main.css"))
}
