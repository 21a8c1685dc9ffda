// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"strings"

	"github.com/blang/semver/v4"
)

const (
	// Edge is the sentinel token for the unreleased documentation snapshot.
	Edge = "edge"

	prereleaseSeparator = "-"
	pathSeparator       = "/"
)

// Identifier is a documentation version token such as "4.1.0",
// "5.0.0-alpha.1" or the "edge" sentinel.
// Raw is always preserved; Semver is only meaningful when Parsed is true.
type Identifier struct {
	Raw string `json:"raw" yaml:"raw"`

	Semver semver.Version `json:"-" yaml:"-"`

	// Parsed reports whether Raw could be read as a semantic version.
	Parsed bool `json:"parsed" yaml:"parsed"`
}

// TryParse parses token into an Identifier.
// The returned Identifier always carries the raw token; the boolean reports
// whether the token is a semantic version. Partial versions like "4.1", a
// leading "v" and build metadata ("4.1.0+b") are accepted; tokens with more
// than three numeric components ("4.1.0.1") are not.
func TryParse(token string) (Identifier, bool) {
	id := Identifier{Raw: token}
	if strings.TrimSpace(token) == "" {
		return id, false
	}

	v, err := semver.ParseTolerant(token)
	if err != nil {
		return id, false
	}

	id.Semver = v
	id.Parsed = true
	return id, true
}

// String returns the raw token.
func (i Identifier) String() string {
	return i.Raw
}

// IsPrerelease reports whether the token carries a pre-release suffix.
func (i Identifier) IsPrerelease() bool {
	return IsPrerelease(i.Raw)
}

// IsSentinel reports whether the token is a marker such as "edge" rather
// than a release.
func (i Identifier) IsSentinel() bool {
	return IsEdge(i.Raw)
}

// IsPrerelease reports whether token contains a hyphenated pre-release suffix.
func IsPrerelease(token string) bool {
	return strings.Contains(token, prereleaseSeparator)
}

// IsEdge reports whether token is the edge sentinel.
func IsEdge(token string) bool {
	return token == Edge
}

// FinalRelease returns the release a pre-release token is heading towards,
// e.g. "5.0.0-alpha.1" becomes "5.0.0". Other tokens are returned unchanged.
func FinalRelease(token string) string {
	if idx := strings.Index(token, prereleaseSeparator); idx >= 0 {
		return token[:idx]
	}
	return token
}

// Compare orders two parsed identifiers numerically by major, minor and patch.
// Returns -1, 0 or 1. Unparsed identifiers sort before parsed ones.
func Compare(a, b Identifier) int {
	switch {
	case !a.Parsed && !b.Parsed:
		return 0
	case !a.Parsed:
		return -1
	case !b.Parsed:
		return 1
	}
	return a.Semver.Compare(b.Semver)
}

// TokenFromEntry returns the leading path segment of a collection entry name.
// Entries with fewer than two segments (index pages and the like) are not
// versioned documents and yield false. Trailing empty segments are ignored.
func TokenFromEntry(entry string) (string, bool) {
	elems := strings.Split(strings.TrimRight(entry, pathSeparator), pathSeparator)
	if len(elems) < 2 {
		return "", false
	}
	return elems[0], true
}
