// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package vite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ManifestEntry describes one chunk of the Vite build output.
type ManifestEntry struct {
	File           string   `json:"file"`
	Src            string   `json:"src,omitempty"`
	IsEntry        bool     `json:"isEntry,omitempty"`
	Imports        []string `json:"imports,omitempty"`
	DynamicImports []string `json:"dynamicImports,omitempty"`
	CSS            []string `json:"css,omitempty"`
	Assets         []string `json:"assets,omitempty"`
}

// Manifest maps logical source paths to their build output.
// Keys keep the order they have in the manifest file.
type Manifest struct {
	entries map[string]ManifestEntry
	keys    []string
	outputs map[string]bool
}

// ParseManifest decodes a manifest.json document.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("manifest is not a JSON object")
	}

	m := &Manifest{entries: make(map[string]ManifestEntry), outputs: make(map[string]bool)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var entry ManifestEntry
		if err := dec.Decode(&entry); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		if _, dup := m.entries[key]; !dup {
			m.keys = append(m.keys, key)
		}
		m.entries[key] = entry
		m.addOutputs(entry)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after manifest object")
	}

	return m, nil
}

func (m *Manifest) addOutputs(e ManifestEntry) {
	if e.File != "" {
		m.outputs[e.File] = true
	}
	for _, f := range e.CSS {
		m.outputs[f] = true
	}
	for _, f := range e.Assets {
		m.outputs[f] = true
	}
}

// HasOutput reports whether file is a build output (a chunk, stylesheet or
// asset) listed anywhere in the manifest.
func (m *Manifest) HasOutput(file string) bool {
	if m == nil {
		return false
	}
	return m.outputs[file]
}

// Lookup returns the entry stored under key.
func (m *Manifest) Lookup(key string) (ManifestEntry, bool) {
	if m == nil {
		return ManifestEntry{}, false
	}
	e, ok := m.entries[key]
	return e, ok
}

// Keys returns the manifest keys in file order.
func (m *Manifest) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}
