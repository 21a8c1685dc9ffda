/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/jasmine/vbanner/pkg/banner"
	"github.com/jasmine/vbanner/pkg/config"
	"github.com/jasmine/vbanner/pkg/logging"
	"github.com/jasmine/vbanner/pkg/serializer"
	"github.com/jasmine/vbanner/pkg/site"
)

const (
	name           = "vbanner"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared by several commands. They are built per command since flags
// keep their parsed state.
func manifestFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "manifest",
		Aliases:  []string{"m"},
		Usage:    "Path to the site manifest (JSON or YAML) exported by the site build",
		Sources:  cli.EnvVars("VBANNER_MANIFEST"),
		Required: true,
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Version banners for older and pre-release API documentation",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Description: `vbanner reads the site manifest exported by a static-site build and
decides, per documentation page, whether readers should be pointed at the
current stable release or the edge docs.

  render - print the banner HTML for one page
  latest - print the latest stable version of a collection
  site   - evaluate every page of the manifest and write a report`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Optional config file with category overrides and HTML escaping",
				Sources: cli.EnvVars("VBANNER_CONFIG"),
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			renderCmd(),
			latestCmd(),
			siteCmd(),
		},
	}
}

// initLogger configures slog after flags are parsed so overrides like
// --log-level take effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}

// loadConfig reads the --config file when set.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded config", "path", path)
	return cfg, nil
}

// newGenerator loads config and manifest and builds a generator from them.
func newGenerator(cmd *cli.Command) (*banner.Generator, *config.Config, *site.Manifest, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	manifest, err := site.Load(cmd.String("manifest"))
	if err != nil {
		return nil, nil, nil, err
	}

	return banner.New(cfg.Options()...), cfg, manifest, nil
}
