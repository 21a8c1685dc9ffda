// Package banner decides whether a documentation page documents an outdated
// or pre-release version and renders the warning banner that links readers
// to the current stable and edge documentation.
//
// # Categories
//
// Each supported collection carries its URL prefix, display name and the
// collection its links point into:
//
//	api                 /api/                  Jasmine
//	npm-api             /api/npm/              Jasmine
//	browser-runner-api  /api/browser-runner/   jasmine-browser-runner
//	archives            /archives/             Jasmine (links into api)
//
// Pages in any other collection never get a banner.
//
// # Decisions
//
//	page version            banner
//	edge                    none
//	latest stable           none
//	pre-release (has "-")   pre-release message, link to latest stable
//	anything else           older-version message, links to latest and edge
//
// Archived pages always get the older-version message.
//
// # Usage
//
//	gen := banner.New()
//	html, err := gen.Render(banner.Page{URL: "/api/3.9.0/Suite", Collection: "api"}, registry)
//	if err != nil {
//	    slog.Warn("skipping banner", "error", err)
//	}
//
// RenderSite evaluates a whole site concurrently and returns a Report.
package banner
