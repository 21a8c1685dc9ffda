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

package banner

import "strings"

// Page is the page under render.
type Page struct {
	URL        string `json:"url" yaml:"url"`
	Collection string `json:"collection" yaml:"collection"`
}

// Name returns the trailing path segment of the page URL, used to build
// cross-links to the same page in other versions.
func (p Page) Name() string {
	trimmed := strings.TrimRight(p.URL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// Registry gives read-only access to the entry names of each collection.
// Each entry is a slash-delimited path whose first segment is a version token.
type Registry interface {
	Entries(collection string) ([]string, bool)
}

// MapRegistry is a Registry backed by a map of collection name to entries.
type MapRegistry map[string][]string

// Entries implements Registry.
func (m MapRegistry) Entries(collection string) ([]string, bool) {
	entries, ok := m[collection]
	return entries, ok
}

// ExtractVersionToken strips prefix from url and returns the first remaining
// path segment, which is the page's own version token.
func ExtractVersionToken(url, prefix string) string {
	rest := strings.TrimLeft(strings.TrimPrefix(url, prefix), "/")
	if idx := strings.Index(rest, "/"); idx >= 0 {
		return rest[:idx]
	}
	return rest
}
