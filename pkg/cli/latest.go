/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jasmine/vbanner/pkg/banner"
)

func latestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "latest",
		EnableShellCompletion: true,
		Usage:                 "Print the latest stable version of a collection",
		Description: `Print the highest non pre-release version named by a collection's entries.
Edge and other non-version entries are ignored. Fails when the collection has
no stable version.

Example:
  vbanner latest --manifest site.yaml --collection npm-api`,
		Flags: []cli.Flag{
			manifestFlag(),
			&cli.StringFlag{
				Name:     "collection",
				Aliases:  []string{"c"},
				Usage:    fmt.Sprintf("Collection to inspect (supported values: %v)", banner.SupportedCategories()),
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gen, _, manifest, err := newGenerator(cmd)
			if err != nil {
				return err
			}

			cat, err := banner.ParseCategory(cmd.String("collection"))
			if err != nil {
				return err
			}

			latest, err := gen.LatestStable(cat, manifest)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, latest)
			return err
		},
	}
}
