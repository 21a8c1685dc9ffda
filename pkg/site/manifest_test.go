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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasmine/vbanner/pkg/banner"
	vberrors "github.com/jasmine/vbanner/pkg/errors"
	"github.com/jasmine/vbanner/pkg/header"
)

const testManifestYAML = `kind: SiteManifest
apiVersion: vbanner.jasmine.github.io/v1
collections:
  api:
    entries:
      - 4.0.0/Suite.html
      - 4.1.0/Suite.html
      - 5.0.0-alpha.1/Suite.html
      - edge/Suite.html
  archives:
    entries:
      - 2.0.0/Suite.html
pages:
  - url: /api/4.0.0/Suite
    collection: api
  - url: /archives/2.0.0/Suite
    collection: archives
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeFile(t, "site.yaml", testManifestYAML))
	require.NoError(t, err)

	assert.Equal(t, header.KindSiteManifest, m.Kind)
	assert.Len(t, m.Collections, 2)
	assert.Len(t, m.Pages(), 2)

	entries, ok := m.Entries("api")
	require.True(t, ok)
	assert.Contains(t, entries, "4.1.0/Suite.html")

	_, ok = m.Entries("npm-api")
	assert.False(t, ok)

	p, ok := m.FindPage("/archives/2.0.0/Suite")
	require.True(t, ok)
	assert.Equal(t, "archives", p.Collection)

	_, ok = m.FindPage("/api/9.9.9/Suite")
	assert.False(t, ok)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "site.json", `{
  "collections": {"npm-api": {"entries": ["1.0.0/Jasmine.html", "1.1.0/Jasmine.html"]}},
  "pages": [{"url": "/api/npm/1.0.0/Jasmine", "collection": "npm-api"}]
}`)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, m.Kind)
	assert.Len(t, m.Pages(), 1)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("wrong kind", func(t *testing.T) {
		_, err := Load(writeFile(t, "site.yaml", "kind: BannerReport\ncollections: {}\n"))
		require.Error(t, err)
		assert.True(t, vberrors.HasCode(err, vberrors.ErrCodeInvalidRequest))
	})

	t.Run("page without url", func(t *testing.T) {
		_, err := Load(writeFile(t, "site.yaml", "collections: {}\npages:\n  - collection: api\n"))
		require.Error(t, err)
		assert.True(t, vberrors.HasCode(err, vberrors.ErrCodeInvalidRequest))
	})
}

func TestManifestRendersBanners(t *testing.T) {
	m, err := Load(writeFile(t, "site.yaml", testManifestYAML))
	require.NoError(t, err)

	gen := banner.New()

	html, err := gen.Render(banner.Page{URL: "/api/4.0.0/Suite", Collection: "api"}, m)
	require.NoError(t, err)
	assert.Contains(t, html, `<a href="/api/4.1.0/Suite">4.1.0</a>`)

	report, err := banner.RenderSite(context.Background(), gen, m)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Summary.Older)
}
