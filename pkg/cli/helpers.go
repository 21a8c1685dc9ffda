/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jasmine/vbanner/pkg/serializer"
)

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)",
			outFormat, serializer.SupportedFormats())
	}
	return outFormat, nil
}
