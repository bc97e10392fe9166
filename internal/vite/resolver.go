// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package vite

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const reactRefreshPreamble = `<script type="module">
import RefreshRuntime from '%s'
RefreshRuntime.injectIntoGlobalHook(window)
window.$RefreshReg$ = () => {}
window.$RefreshSig$ = () => (type) => type
window.__vite_plugin_react_preamble_installed__ = true
</script>`

// Resolver produces tags and URLs for Vite assets.
type Resolver struct {
	cfg      Config
	manifest *Manifest
	static   StaticURLResolver
	fsys     fs.FS
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStaticURLResolver delegates production URL construction to s.
// Without it production URLs are StaticURLPrefix joined with the file name.
func WithStaticURLResolver(s StaticURLResolver) Option {
	return func(r *Resolver) { r.static = s }
}

// WithFS reads the manifest from fsys instead of the OS filesystem.
func WithFS(fsys fs.FS) Option {
	return func(r *Resolver) { r.fsys = fsys }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// New creates a Resolver. In production mode the manifest is read and parsed
// here; any failure is returned wrapped in ErrManifestLoad.
func New(cfg Config, opts ...Option) (*Resolver, error) {
	r := &Resolver{cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	if cfg.DevMode {
		r.logger.Info("vite dev mode", "dev_server", r.devServerOrigin())
		return r, nil
	}

	m, err := r.loadManifest()
	if err != nil {
		return nil, err
	}
	r.manifest = m
	r.logger.Debug("vite manifest loaded", "path", cfg.ManifestPath, "entries", m.Len())

	return r, nil
}

func (r *Resolver) loadManifest() (*Manifest, error) {
	var (
		data []byte
		err  error
	)
	if r.fsys != nil {
		data, err = fs.ReadFile(r.fsys, r.cfg.ManifestPath)
	} else {
		data, err = os.ReadFile(r.cfg.ManifestPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrManifestLoad, r.cfg.ManifestPath, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrManifestLoad, r.cfg.ManifestPath, err)
	}
	return m, nil
}

// DevMode reports whether the resolver points at the dev server.
func (r *Resolver) DevMode() bool {
	return r.cfg.DevMode
}

// Manifest returns the loaded manifest, or nil in dev mode.
func (r *Resolver) Manifest() *Manifest {
	return r.manifest
}

// AssetTags returns the tags needed to load the entry at path.
//
// In dev mode this is a single module script pointing at the dev server.
// In production mode it is one stylesheet link per CSS file reachable
// through the entry's imports, followed by the entry's own module script.
// Attributes in extra override the defaults.
func (r *Resolver) AssetTags(path string, extra Attrs) (string, error) {
	if r.cfg.DevMode {
		return scriptTag(r.devServerURL(path), Attrs{{"type", "module"}}.Merge(extra)), nil
	}

	entry, err := r.lookup(path)
	if err != nil {
		return "", err
	}

	w := &cssWalk{r: r, seen: map[string]bool{}, visited: map[string]bool{}}
	if err := w.walk(path); err != nil {
		return "", err
	}

	attrs := Attrs{{"type", "module"}, {"crossorigin", ""}}.Merge(extra)
	tags := append(w.tags, scriptTag(r.productionURL(entry.File), attrs))

	return strings.Join(tags, "\n"), nil
}

// cssWalk collects stylesheet tags depth-first: imports before the entry's
// own CSS. seen and visited live for one AssetTags call.
type cssWalk struct {
	r       *Resolver
	seen    map[string]bool
	visited map[string]bool
	tags    []string
}

func (w *cssWalk) walk(path string) error {
	// Each entry is walked once; a revisit adds no new CSS.
	if w.visited[path] {
		return nil
	}
	w.visited[path] = true

	entry, err := w.r.lookup(path)
	if err != nil {
		return err
	}

	for _, imp := range entry.Imports {
		if err := w.walk(imp); err != nil {
			return err
		}
	}

	for _, css := range entry.CSS {
		if w.seen[css] {
			continue
		}
		w.seen[css] = true
		w.tags = append(w.tags, stylesheetTag(w.r.productionURL(css)))
	}
	return nil
}

// AssetURL returns the URL of the asset at path. No dependencies are resolved.
func (r *Resolver) AssetURL(path string) (string, error) {
	if r.cfg.DevMode {
		return r.devServerURL(path), nil
	}

	entry, err := r.lookup(path)
	if err != nil {
		return "", err
	}
	return r.productionURL(entry.File), nil
}

// LegacyPolyfills returns the script tag for the polyfills chunk produced by
// @vitejs/plugin-legacy: the first manifest key containing the configured
// motif. It must come before any other legacy script. Empty in dev mode.
func (r *Resolver) LegacyPolyfills(extra Attrs) (string, error) {
	if r.cfg.DevMode {
		return "", nil
	}

	for _, key := range r.manifest.Keys() {
		if !strings.Contains(key, r.cfg.LegacyPolyfillsMotif) {
			continue
		}
		entry, _ := r.manifest.Lookup(key)
		return scriptTag(r.productionURL(entry.File), legacyAttrs(extra)), nil
	}

	return "", fmt.Errorf("%w in manifest at %s", ErrPolyfillNotFound, r.cfg.ManifestPath)
}

// LegacyAssetTags returns the nomodule script tag for a legacy entry.
// Legacy chunks inline their CSS, so no stylesheets are emitted.
// Empty in dev mode.
func (r *Resolver) LegacyAssetTags(path string, extra Attrs) (string, error) {
	if r.cfg.DevMode {
		return "", nil
	}

	entry, err := r.lookup(path)
	if err != nil {
		return "", err
	}
	return scriptTag(r.productionURL(entry.File), legacyAttrs(extra)), nil
}

// HMRClient returns the script tag for the Vite client. Empty in production.
func (r *Resolver) HMRClient(extra Attrs) string {
	if !r.cfg.DevMode {
		return ""
	}
	return scriptTag(r.devServerURL(r.cfg.WSClientURL), Attrs{{"type", "module"}}.Merge(extra))
}

// ReactRefresh returns the inline preamble @vitejs/plugin-react expects
// before any component module runs. Empty in production.
func (r *Resolver) ReactRefresh() string {
	if !r.cfg.DevMode {
		return ""
	}
	return fmt.Sprintf(reactRefreshPreamble, r.devServerURL(r.cfg.ReactRefreshURL))
}

func legacyAttrs(extra Attrs) Attrs {
	return Attrs{{"nomodule", ""}, {"crossorigin", ""}}.Merge(extra)
}

func (r *Resolver) lookup(path string) (ManifestEntry, error) {
	if entry, ok := r.manifest.Lookup(path); ok {
		return entry, nil
	}
	return ManifestEntry{}, &AssetError{Path: path, ManifestPath: r.cfg.ManifestPath}
}

func (r *Resolver) devServerOrigin() string {
	return r.cfg.DevServerProtocol + "://" + r.cfg.DevServerHost + ":" + strconv.Itoa(r.cfg.DevServerPort)
}

func (r *Resolver) devServerURL(path string) string {
	static := joinURL(r.cfg.StaticURL, r.cfg.StaticURLPrefix)
	if !strings.HasSuffix(static, "/") {
		static += "/"
	}
	return joinURL(r.devServerOrigin(), joinURL(static, path))
}

func (r *Resolver) productionURL(path string) string {
	name := joinURL(r.cfg.StaticURLPrefix, path)
	if r.static != nil {
		return r.static.URL(name)
	}
	return name
}
