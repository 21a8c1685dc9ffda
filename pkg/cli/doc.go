// Package cli implements the command-line interface for the vbanner tool.
//
// # Overview
//
// vbanner decides which documentation pages of a versioned API reference
// need a warning banner: pages for an older release point readers at the
// current stable version and the edge docs, and pages for a pre-release
// point readers back to the stable docs. It reads a site manifest exported
// by the static-site build.
//
// # Commands
//
// render - Print the banner for one page:
//
//	vbanner render --manifest site.yaml --url /api/3.9.0/Suite [--collection api]
//
// Prints the HTML fragment for the page, or nothing when the page is
// current, edge, or in a collection without banners.
//
// latest - Print the latest stable version of a collection:
//
//	vbanner latest --manifest site.yaml --collection npm-api
//
// site - Evaluate every page in the manifest:
//
//	vbanner site --manifest site.yaml [--output FILE] [--format yaml|json|table]
//	    [--fragments DIR] [--metrics-file FILE] [--concurrency N]
//
// Writes a BannerReport with one result per page and a per-status summary.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--config       Config file with category overrides and HTML escaping
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL         Set logging verbosity (debug, info, warn, error)
//	VBANNER_CONFIG    Default for --config
//	VBANNER_MANIFEST  Default for --manifest
//
// # Exit Codes
//
//	0  Success, including pages skipped for lack of a stable release
//	1  Invalid arguments, unreadable input, or canceled run
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/jasmine/vbanner/pkg/cli.version=1.0.0'"
package cli
