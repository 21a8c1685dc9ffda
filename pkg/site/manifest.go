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

package site

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jasmine/vbanner/pkg/banner"
	vberrors "github.com/jasmine/vbanner/pkg/errors"
	"github.com/jasmine/vbanner/pkg/header"
	"github.com/jasmine/vbanner/pkg/serializer"
)

// Collection lists the entry names of one documentation collection, as the
// site generator knows them, e.g. "4.1.0/Suite.html".
type Collection struct {
	Entries []string `json:"entries" yaml:"entries"`
}

// Manifest is the site metadata exported by the static-site build: every
// collection's entries plus the pages to annotate.
type Manifest struct {
	header.Header `json:",inline" yaml:",inline"`

	Collections map[string]Collection `json:"collections" yaml:"collections"`
	PageList    []banner.Page         `json:"pages,omitempty" yaml:"pages,omitempty"`
}

// Load reads and validates a manifest from a JSON or YAML file.
func Load(path string) (*Manifest, error) {
	m, err := serializer.FromFile[Manifest](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load site manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid site manifest %q: %w", path, err)
	}

	slog.Debug("loaded site manifest",
		"path", path,
		"collections", len(m.Collections),
		"pages", len(m.PageList))

	return m, nil
}

// Validate checks the manifest header and pages.
// An empty kind is accepted for hand-written manifests.
func (m *Manifest) Validate() error {
	if m.Kind != "" && m.Kind != header.KindSiteManifest {
		return vberrors.NewWithContext(vberrors.ErrCodeInvalidRequest,
			"unexpected document kind",
			map[string]any{"kind": m.Kind.String(), "expected": header.KindSiteManifest.String()})
	}

	for i, p := range m.PageList {
		if strings.TrimSpace(p.URL) == "" {
			return vberrors.NewWithContext(vberrors.ErrCodeInvalidRequest,
				"page has no url",
				map[string]any{"index": i})
		}
	}

	return nil
}

// Entries implements banner.Registry.
func (m *Manifest) Entries(collection string) ([]string, bool) {
	c, ok := m.Collections[collection]
	if !ok {
		return nil, false
	}
	return c.Entries, true
}

// Pages implements banner.Site.
func (m *Manifest) Pages() []banner.Page {
	return m.PageList
}

// FindPage returns the manifest page with the given URL.
func (m *Manifest) FindPage(url string) (banner.Page, bool) {
	for _, p := range m.PageList {
		if p.URL == url {
			return p, true
		}
	}
	return banner.Page{}, false
}
