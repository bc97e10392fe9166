// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package vite

import (
	"html"
	"strings"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// A is shorthand for Attr{Key: key, Value: value}.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Attrs is an ordered list of HTML attributes. Values are HTML-escaped when
// rendered; keys are written as given and must be valid attribute names, so
// never build keys from user input.
type Attrs []Attr

// Merge returns a new list with extra applied on top of a.
// A key present in both keeps its position from a and takes its value from
// extra. Keys only in extra are appended in order; the last duplicate wins.
func (a Attrs) Merge(extra Attrs) Attrs {
	out := make(Attrs, len(a), len(a)+len(extra))
	copy(out, a)
	for _, attr := range extra {
		if i := out.index(attr.Key); i >= 0 {
			out[i].Value = attr.Value
			continue
		}
		out = append(out, attr)
	}
	return out
}

// Get returns the value of key and whether it is set.
func (a Attrs) Get(key string) (string, bool) {
	if i := a.index(key); i >= 0 {
		return a[i].Value, true
	}
	return "", false
}

func (a Attrs) index(key string) int {
	for i, attr := range a {
		if attr.Key == key {
			return i
		}
	}
	return -1
}

// String renders the attributes as key="value" pairs separated by spaces.
// Values are HTML-escaped.
func (a Attrs) String() string {
	parts := make([]string, 0, len(a))
	for _, attr := range a {
		parts = append(parts, attr.Key+`="`+html.EscapeString(attr.Value)+`"`)
	}
	return strings.Join(parts, " ")
}

func scriptTag(src string, attrs Attrs) string {
	var b strings.Builder
	b.WriteString("<script ")
	if len(attrs) > 0 {
		b.WriteString(attrs.String())
		b.WriteByte(' ')
	}
	b.WriteString(`src="`)
	b.WriteString(html.EscapeString(src))
	b.WriteString(`"></script>`)
	return b.String()
}

func stylesheetTag(href string) string {
	return `<link rel="stylesheet" href="` + html.EscapeString(href) + `" />`
}
