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
	"errors"
	"log/slog"

	vberrors "github.com/jasmine/vbanner/pkg/errors"
)

// ErrNoStableVersion is the cause of the error returned by LatestStable when
// no entry names a parseable, non pre-release version.
var ErrNoStableVersion = errors.New("no stable version found")

// LatestStable returns the highest stable version named by entries.
//
// Each entry is a slash-delimited path whose first segment is a version token.
// Entries with fewer than two segments, pre-release tokens and tokens that are
// not semantic versions (such as "edge") are skipped. Ordering is numeric, so
// "10.0.0" is newer than "9.0.0". When two tokens compare equal the first one
// listed wins.
//
// Returns a StructuredError with code ErrCodeNoStableVersion wrapping
// ErrNoStableVersion when nothing qualifies.
func LatestStable(entries []string) (Identifier, error) {
	var (
		latest Identifier
		found  bool
	)

	for _, entry := range entries {
		token, ok := TokenFromEntry(entry)
		if !ok || IsPrerelease(token) {
			continue
		}

		id, ok := TryParse(token)
		if !ok {
			slog.Debug("ignoring non-version entry", "entry", entry, "token", token)
			continue
		}

		if !found || Compare(id, latest) > 0 {
			latest = id
			found = true
		}
	}

	if !found {
		return Identifier{}, vberrors.WrapWithContext(
			vberrors.ErrCodeNoStableVersion,
			"unable to determine latest stable version",
			ErrNoStableVersion,
			map[string]any{"entries": len(entries)},
		)
	}

	return latest, nil
}
