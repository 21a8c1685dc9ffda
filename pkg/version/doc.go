// Package version classifies documentation version tokens and selects the
// latest stable release of a documentation collection.
//
// # Tokens
//
// A token is the first path segment of a documentation entry, for example
// "4.1.0" in "4.1.0/Suite". Three kinds of token show up in practice:
//
//   - Releases: "4.1.0", "3.99", "10.0.0"
//   - Pre-releases: anything containing "-", e.g. "5.0.0-alpha.1"
//   - Sentinels: "edge", the in-development snapshot
//
// Parsing is delegated to github.com/blang/semver/v4. Tokens that do not
// parse are never errors; they are carried as opaque strings and simply never
// compete for "latest stable".
//
// # Usage
//
//	latest, err := version.LatestStable([]string{
//	    "4.0.0/Suite", "4.1.0/Suite", "5.0.0-alpha.1/Suite", "edge/Suite",
//	})
//	if errors.Is(err, version.ErrNoStableVersion) {
//	    // nothing to link to
//	}
//	fmt.Println(latest) // 4.1.0
//
//	version.FinalRelease("5.0.0-alpha.1") // "5.0.0"
package version
