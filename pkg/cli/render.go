/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jasmine/vbanner/pkg/banner"
	vberrors "github.com/jasmine/vbanner/pkg/errors"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Print the version banner HTML for a single page",
		Description: `Print the banner HTML fragment for one page, ready to be spliced into the
rendered page. Nothing is printed when the page is current, edge, or in a
collection that does not carry banners.

The page's collection is taken from --collection or, when omitted, from the
manifest page with the same URL.

Example:
  vbanner render --manifest site.yaml --url /api/3.9.0/Suite --collection api`,
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Usage:    "URL of the page under render (e.g., /api/3.9.0/Suite)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "collection",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Collection of the page (supported values: %v)", banner.SupportedCategories()),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gen, _, manifest, err := newGenerator(cmd)
			if err != nil {
				return err
			}

			page := banner.Page{
				URL:        cmd.String("url"),
				Collection: cmd.String("collection"),
			}
			if page.Collection == "" {
				known, ok := manifest.FindPage(page.URL)
				if !ok {
					return vberrors.NewWithContext(vberrors.ErrCodeNotFound,
						"page not in manifest, pass --collection",
						map[string]any{"url": page.URL})
				}
				page.Collection = known.Collection
			}

			html, err := gen.Render(page, manifest)
			if err != nil {
				if vberrors.HasCode(err, vberrors.ErrCodeNoStableVersion) {
					slog.Warn("no stable version to link to, skipping banner",
						"url", page.URL,
						"collection", page.Collection,
						"error", err)
					return nil
				}
				return fmt.Errorf("failed to render banner for %q: %w", page.URL, err)
			}

			if html == "" {
				slog.Debug("no banner needed", "url", page.URL)
				return nil
			}

			_, err = fmt.Fprint(cmd.Root().Writer, html)
			return err
		},
	}
}
