// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"codeberg.org/oliverandrich/go-vite-assets/internal/config"
	"codeberg.org/oliverandrich/go-vite-assets/internal/server"
	"codeberg.org/oliverandrich/go-vite-assets/internal/vite"
	"github.com/urfave/cli/v3"
)

type tagsOptions struct {
	URLOnly   bool
	Legacy    bool
	Polyfills bool
	HMR       bool
	List      bool
}

func tagsCommand() *cli.Command {
	return &cli.Command{
		Name:      "tags",
		Usage:     "Print the HTML tags for Vite entries",
		ArgsUsage: "[entry...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "url", Usage: "Print only the asset URL"},
			&cli.BoolFlag{Name: "legacy", Usage: "Print the legacy nomodule script instead"},
			&cli.BoolFlag{Name: "polyfills", Usage: "Print the legacy polyfills script first"},
			&cli.BoolFlag{Name: "hmr", Usage: "Print the HMR client and React refresh preamble first (dev mode)"},
			&cli.BoolFlag{Name: "list", Usage: "List the entries in the manifest"},
		},
		Action: runTags,
	}
}

func runTags(_ context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	slog.SetDefault(server.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format))

	r, err := server.NewResolver(cfg)
	if err != nil {
		return err
	}

	entries := cmd.Args().Slice()
	if len(entries) == 0 {
		entries = []string{cfg.Entry}
	}

	opts := tagsOptions{
		URLOnly:   cmd.Bool("url"),
		Legacy:    cmd.Bool("legacy"),
		Polyfills: cmd.Bool("polyfills"),
		HMR:       cmd.Bool("hmr"),
		List:      cmd.Bool("list"),
	}
	return printTags(os.Stdout, r, entries, opts)
}

func printTags(w io.Writer, r *vite.Resolver, entries []string, opts tagsOptions) error {
	if opts.List {
		return listEntries(w, r)
	}

	var lines []string
	if opts.HMR {
		lines = append(lines, r.ReactRefresh(), r.HMRClient(nil))
	}
	if opts.Polyfills {
		tag, err := r.LegacyPolyfills(nil)
		if err != nil {
			return err
		}
		lines = append(lines, tag)
	}

	for _, entry := range entries {
		var (
			out string
			err error
		)
		switch {
		case opts.URLOnly:
			out, err = r.AssetURL(entry)
		case opts.Legacy:
			out, err = r.LegacyAssetTags(entry, nil)
		default:
			out, err = r.AssetTags(entry, nil)
		}
		if err != nil {
			return err
		}
		lines = append(lines, out)
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func listEntries(w io.Writer, r *vite.Resolver) error {
	m := r.Manifest()
	if m == nil {
		return errors.New("no manifest in dev mode")
	}

	for _, key := range m.Keys() {
		entry, _ := m.Lookup(key)
		if !entry.IsEntry {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", key, entry.File); err != nil {
			return err
		}
	}
	return nil
}
