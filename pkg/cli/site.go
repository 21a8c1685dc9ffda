/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/jasmine/vbanner/pkg/banner"
	"github.com/jasmine/vbanner/pkg/defaults"
	"github.com/jasmine/vbanner/pkg/serializer"
)

func siteCmd() *cli.Command {
	return &cli.Command{
		Name:                  "site",
		EnableShellCompletion: true,
		Usage:                 "Evaluate every page in the manifest and write a banner report",
		Description: `Evaluate the banner of every page listed in the site manifest and write a
report with a per-status summary. Pages in collections without a stable
release are skipped with a warning rather than failing the run.

With --fragments, each non-empty banner is also written as an HTML fragment
under DIR, mirroring the page URL (e.g., DIR/api/3.9.0/Suite.html).

Examples:
  vbanner site --manifest site.yaml
  vbanner site --manifest site.yaml --format table
  vbanner site --manifest site.yaml --output report.json --fragments _banners`,
		Flags: []cli.Flag{
			manifestFlag(),
			outputFlag(),
			formatFlag(),
			&cli.StringFlag{
				Name:  "fragments",
				Usage: "Directory to write one HTML fragment per bannered page",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics in text format to this file after the run",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Number of pages evaluated in parallel (default: config value or GOMAXPROCS)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.SiteRenderTimeout,
				Usage: "Maximum time to evaluate the whole site",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			gen, cfg, manifest, err := newGenerator(cmd)
			if err != nil {
				return err
			}

			concurrency := cfg.Concurrency
			if cmd.IsSet("concurrency") {
				concurrency = int(cmd.Int("concurrency"))
			}
			if concurrency > defaults.MaxConcurrency {
				return fmt.Errorf("concurrency %d exceeds the maximum of %d", concurrency, defaults.MaxConcurrency)
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			report, err := banner.RenderSite(ctx, gen, manifest,
				banner.WithConcurrency(concurrency),
				banner.WithToolVersion(version),
				banner.WithSource(cmd.String("manifest")))
			if err != nil {
				return fmt.Errorf("failed to render site banners: %w", err)
			}

			if dir := cmd.String("fragments"); dir != "" {
				if err := writeFragments(dir, report.Results); err != nil {
					return err
				}
			}

			if err := writeReport(ctx, cmd, outFormat, report); err != nil {
				return err
			}

			if path := cmd.String("metrics-file"); path != "" {
				if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", path, err)
				}
				slog.Debug("metrics written", "path", path)
			}

			return nil
		},
	}
}

func writeReport(ctx context.Context, cmd *cli.Command, format serializer.Format, report *banner.Report) error {
	ser := serializer.NewWriter(format, cmd.Root().Writer)
	if path := cmd.String("output"); path != "" {
		fw, err := serializer.NewFileWriter(format, path)
		if err != nil {
			return fmt.Errorf("failed to open report output: %w", err)
		}
		ser = fw
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, report); err != nil {
		return fmt.Errorf("failed to serialize banner report: %w", err)
	}
	return nil
}

// writeFragments writes each non-empty banner to dir, mirroring its page URL.
func writeFragments(dir string, results []banner.Result) error {
	written := 0
	for _, r := range results {
		if r.HTML == "" {
			continue
		}
		path, err := fragmentPath(dir, r.URL)
		if err != nil {
			return err
		}
		if err := serializer.WriteToFile(path, []byte(r.HTML)); err != nil {
			return fmt.Errorf("failed to write fragment for %q: %w", r.URL, err)
		}
		written++
	}
	slog.Info("banner fragments written", "dir", dir, "count", written)
	return nil
}

// fragmentPath maps a page URL to a file under dir. URLs that would escape
// dir are rejected.
func fragmentPath(dir, url string) (string, error) {
	rel := strings.Trim(url, "/")
	if rel == "" {
		rel = "index"
	}
	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("page url %q does not map to a path under %q", url, dir)
	}
	return filepath.Join(dir, rel) + ".html", nil
}
