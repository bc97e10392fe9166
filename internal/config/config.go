// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config

import (
	"fmt"

	"codeberg.org/oliverandrich/go-vite-assets/internal/assets"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var configFile = altsrc.StringSourcer("config.toml")

type Config struct { //nolint:govet // fieldalignment not critical for config structs
	Server ServerConfig
	Log    LogConfig
	Static StaticConfig
	Vite   vite.Config
	Entry  string // entry rendered by the home page
}

type ServerConfig struct {
	Host    string
	Port    int
	BaseURL string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

type StaticConfig struct {
	URL      string // URL prefix static files are served under
	Dir      string // directory served under URL
	Manifest string // optional hashed-name manifest, see assets.LoadStorage
}

func NewFromCLI(cmd *cli.Command) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host:    cmd.String("host"),
			Port:    int(cmd.Int("port")),
			BaseURL: cmd.String("base-url"),
		},
		Log: LogConfig{
			Level:  cmd.String("log-level"),
			Format: cmd.String("log-format"),
		},
		Static: StaticConfig{
			URL:      cmd.String("static-url"),
			Dir:      cmd.String("static-dir"),
			Manifest: cmd.String("static-manifest"),
		},
		Vite: vite.Config{
			DevMode:              cmd.Bool("vite-dev-mode"),
			DevServerProtocol:    cmd.String("vite-dev-server-protocol"),
			DevServerHost:        cmd.String("vite-dev-server-host"),
			DevServerPort:        int(cmd.Int("vite-dev-server-port")),
			StaticURLPrefix:      cmd.String("vite-static-url-prefix"),
			ManifestPath:         cmd.String("vite-manifest-path"),
			LegacyPolyfillsMotif: cmd.String("vite-legacy-polyfills-motif"),
			WSClientURL:          cmd.String("vite-ws-client-url"),
			ReactRefreshURL:      cmd.String("vite-react-refresh-url"),
		},
		Entry: cmd.String("entry"),
	}

	// Dev server URLs live under the same static URL the app serves.
	cfg.Vite.StaticURL = cfg.Static.URL

	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = buildBaseURL(cfg)
	}

	return cfg
}

func buildBaseURL(cfg *Config) string {
	if cfg.Server.Port == 80 {
		return fmt.Sprintf("http://%s", cfg.Server.Host)
	}
	return fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
}

// sources chains an environment variable and a TOML key.
func sources(envKey, tomlKey string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(cli.EnvVar(envKey), toml.TOML(tomlKey, configFile))
}

func Flags() []cli.Flag {
	defaults := vite.DefaultConfig()

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "Host to bind to",
			Sources: sources("HOST", "server.host"),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   8080,
			Usage:   "Port to listen on",
			Sources: sources("PORT", "server.port"),
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "Base URL for the application",
			Sources: sources("BASE_URL", "server.base_url"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: sources("LOG_LEVEL", "log.level"),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log format (text, json)",
			Sources: sources("LOG_FORMAT", "log.format"),
		},
		// Static files
		&cli.StringFlag{
			Name:    "static-url",
			Value:   defaults.StaticURL,
			Usage:   "URL prefix static files are served under",
			Sources: sources("STATIC_URL", "static.url"),
		},
		&cli.StringFlag{
			Name:    "static-dir",
			Value:   "static",
			Usage:   "Directory served under the static URL",
			Sources: sources("STATIC_DIR", "static.dir"),
		},
		&cli.StringFlag{
			Name:    "static-manifest",
			Usage:   "Hashed-name manifest for static files (optional)",
			Sources: sources("STATIC_MANIFEST", "static.manifest"),
		},
		// Vite
		&cli.BoolFlag{
			Name:    "vite-dev-mode",
			Value:   assets.DevBuild,
			Usage:   "Load assets from the Vite dev server instead of the manifest",
			Sources: sources("VITE_DEV_MODE", "vite.dev_mode"),
		},
		&cli.StringFlag{
			Name:    "vite-dev-server-protocol",
			Value:   defaults.DevServerProtocol,
			Usage:   "Vite dev server protocol",
			Sources: sources("VITE_DEV_SERVER_PROTOCOL", "vite.dev_server_protocol"),
		},
		&cli.StringFlag{
			Name:    "vite-dev-server-host",
			Value:   defaults.DevServerHost,
			Usage:   "Vite dev server host",
			Sources: sources("VITE_DEV_SERVER_HOST", "vite.dev_server_host"),
		},
		&cli.IntFlag{
			Name:    "vite-dev-server-port",
			Value:   defaults.DevServerPort,
			Usage:   "Vite dev server port",
			Sources: sources("VITE_DEV_SERVER_PORT", "vite.dev_server_port"),
		},
		&cli.StringFlag{
			Name:    "vite-static-url-prefix",
			Value:   defaults.StaticURLPrefix,
			Usage:   "Prefix of Vite output below the static URL",
			Sources: sources("VITE_STATIC_URL_PREFIX", "vite.static_url_prefix"),
		},
		&cli.StringFlag{
			Name:    "vite-manifest-path",
			Value:   defaults.ManifestPath,
			Usage:   "Path to the Vite manifest (Vite 5 writes it to .vite/manifest.json in the build directory)",
			Sources: sources("VITE_MANIFEST_PATH", "vite.manifest_path"),
		},
		&cli.StringFlag{
			Name:    "vite-legacy-polyfills-motif",
			Value:   defaults.LegacyPolyfillsMotif,
			Usage:   "Substring identifying the legacy polyfills chunk in the manifest",
			Sources: sources("VITE_LEGACY_POLYFILLS_MOTIF", "vite.legacy_polyfills_motif"),
		},
		&cli.StringFlag{
			Name:    "vite-ws-client-url",
			Value:   defaults.WSClientURL,
			Usage:   "Path of the Vite HMR client on the dev server",
			Sources: sources("VITE_WS_CLIENT_URL", "vite.ws_client_url"),
		},
		&cli.StringFlag{
			Name:    "vite-react-refresh-url",
			Value:   defaults.ReactRefreshURL,
			Usage:   "Path of the React refresh runtime on the dev server",
			Sources: sources("VITE_REACT_REFRESH_URL", "vite.react_refresh_url"),
		},
		&cli.StringFlag{
			Name:    "entry",
			Value:   "src/main.ts",
			Usage:   "Vite entry loaded by the home page",
			Sources: sources("ENTRY", "vite.entry"),
		},
	}
}
