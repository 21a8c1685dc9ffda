// Package site loads the site manifest a static-site build exports for
// vbanner: every documentation collection's entry names and the pages that
// may need a version banner.
//
// Example manifest:
//
//	kind: SiteManifest
//	apiVersion: vbanner.jasmine.github.io/v1
//	collections:
//	  api:
//	    entries:
//	      - 4.1.0/Suite.html
//	      - 5.0.0-alpha.1/Suite.html
//	      - edge/Suite.html
//	  archives:
//	    entries:
//	      - 2.0.0/Suite.html
//	pages:
//	  - url: /api/3.9.0/Suite
//	    collection: api
//
// A Manifest satisfies banner.Registry and banner.Site.
package site
