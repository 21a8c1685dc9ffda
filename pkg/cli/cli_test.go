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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/jasmine/vbanner/pkg/banner"
)

const testManifest = `kind: SiteManifest
apiVersion: vbanner.jasmine.github.io/v1
collections:
  api:
    entries:
      - 4.0.0/Suite.html
      - 4.1.0/Suite.html
      - 3.9.0/Suite.html
      - 5.0.0-alpha.1/Suite.html
      - edge/Suite.html
  npm-api:
    entries:
      - 5.0.0-alpha.1/Jasmine.html
      - edge/Jasmine.html
  archives:
    entries:
      - 2.0.0/Suite.html
pages:
  - url: /api/3.9.0/Suite
    collection: api
  - url: /api/4.1.0/Suite
    collection: api
  - url: /api/edge/Suite
    collection: api
  - url: /api/5.0.0-alpha.1/Suite
    collection: api
  - url: /api/npm/5.0.0-alpha.1/Jasmine
    collection: npm-api
  - url: /archives/2.0.0/Suite
    collection: archives
`

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func findFlag(cmd *cli.Command, name string) cli.Flag {
	for _, f := range cmd.Flags {
		if hasName(f, name) {
			return f
		}
	}
	return nil
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the root command with args and returns what it wrote.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.Writer = &out
	root.ErrWriter = &bytes.Buffer{}
	err := root.Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
	return out.String(), err
}

func TestRootCmd_CommandStructure(t *testing.T) {
	root := newRootCmd()

	assert.Equal(t, name, root.Name)
	assert.NotEmpty(t, root.Usage)
	assert.NotNil(t, root.Before)

	for _, flag := range []string{"log-level", "config"} {
		assert.NotNil(t, findFlag(root, flag), "root should have --%s", flag)
	}

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
		assert.NotNil(t, c.Action, "%s should have an action", c.Name)
		assert.NotEmpty(t, c.Description, "%s should have a description", c.Name)
		assert.True(t, hasName(findFlag(c, "manifest"), "m"), "%s should accept -m", c.Name)
	}
	assert.ElementsMatch(t, []string{"render", "latest", "site"}, names)
}

func TestSiteCmd_CommandStructure(t *testing.T) {
	cmd := siteCmd()

	for _, flag := range []string{"manifest", "output", "format", "fragments", "metrics-file", "concurrency", "timeout"} {
		assert.NotNil(t, findFlag(cmd, flag), "site should have --%s", flag)
	}

	required := findFlag(cmd, "manifest").(*cli.StringFlag)
	assert.True(t, required.Required)
}

func TestRenderCmd(t *testing.T) {
	manifest := writeManifest(t, testManifest)

	tests := []struct {
		name     string
		args     []string
		contains []string
		empty    bool
		wantErr  bool
	}{
		{
			name: "older version",
			args: []string{"--url", "/api/3.9.0/Suite", "--collection", "api"},
			contains: []string{
				`<div class="main-content">`,
				"This page is for an older version of Jasmine\n(3.9.0)",
				`<a href="/api/4.1.0/Suite">4.1.0</a>`,
				`<a href="/api/edge/Suite">Edge</a>`,
			},
		},
		{
			name:     "collection from manifest",
			args:     []string{"--url", "/api/5.0.0-alpha.1/Suite"},
			contains: []string{"This page describes a pre-release version of Jasmine\n(5.0.0-alpha.1)"},
		},
		{
			name:     "archived page",
			args:     []string{"--url", "/archives/2.0.0/Suite"},
			contains: []string{`<a href="/api/4.1.0/Suite">4.1.0</a>`},
		},
		{
			name:  "current version",
			args:  []string{"--url", "/api/4.1.0/Suite", "--collection", "api"},
			empty: true,
		},
		{
			name:  "edge",
			args:  []string{"--url", "/api/edge/Suite", "--collection", "api"},
			empty: true,
		},
		{
			name:  "unsupported collection",
			args:  []string{"--url", "/tutorials/intro", "--collection", "tutorials"},
			empty: true,
		},
		{
			name:  "no stable version is not an error",
			args:  []string{"--url", "/api/npm/5.0.0-alpha.1/Jasmine"},
			empty: true,
		},
		{
			name:    "page not in manifest",
			args:    []string{"--url", "/api/1.0.0/Suite"},
			wantErr: true,
		},
		{
			name:    "missing url",
			args:    []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--manifest", manifest}, tt.args...)
			out, err := run(t, args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.empty {
				assert.Empty(t, out)
			}
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderCmdMissingManifest(t *testing.T) {
	_, err := run(t, "render", "--manifest", filepath.Join(t.TempDir(), "missing.yaml"), "--url", "/api/3.9.0/Suite")
	assert.Error(t, err)
}

func TestRenderCmdWithConfig(t *testing.T) {
	manifest := writeManifest(t, testManifest)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`kind: BannerConfig
categories:
  api:
    displayName: Jasmine Core
`), 0o600))

	out, err := run(t, "--config", cfgPath, "render", "--manifest", manifest, "--url", "/api/3.9.0/Suite")
	require.NoError(t, err)
	assert.Contains(t, out, "older version of Jasmine Core")
}

func TestLatestCmd(t *testing.T) {
	manifest := writeManifest(t, testManifest)

	out, err := run(t, "latest", "--manifest", manifest, "--collection", "api")
	require.NoError(t, err)
	assert.Equal(t, "4.1.0\n", out)

	_, err = run(t, "latest", "--manifest", manifest, "--collection", "npm-api")
	assert.Error(t, err, "collection with only pre-releases has no stable version")

	_, err = run(t, "latest", "--manifest", manifest, "--collection", "guides")
	assert.Error(t, err)
}

func TestSiteCmd(t *testing.T) {
	manifest := writeManifest(t, testManifest)
	dir := t.TempDir()
	fragments := filepath.Join(dir, "banners")
	metrics := filepath.Join(dir, "metrics.prom")

	out, err := run(t, "site",
		"--manifest", manifest,
		"--format", "json",
		"--fragments", fragments,
		"--metrics-file", metrics,
		"--concurrency", "2")
	require.NoError(t, err)

	var report banner.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, banner.Summary{Pages: 6, Older: 2, Prerelease: 1, Skipped: 3}, report.Summary)
	require.Len(t, report.Results, 6)
	assert.Equal(t, manifest, report.Metadata["manifest"])

	html, err := os.ReadFile(filepath.Join(fragments, "api", "3.9.0", "Suite.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "older version of Jasmine")

	_, err = os.Stat(filepath.Join(fragments, "api", "4.1.0", "Suite.html"))
	assert.True(t, os.IsNotExist(err), "current pages get no fragment")

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "vbanner_banners_total")
	assert.Contains(t, string(prom), "vbanner_render_site_duration_seconds")
}

func TestSiteCmdOutputFile(t *testing.T) {
	manifest := writeManifest(t, testManifest)
	path := filepath.Join(t.TempDir(), "report.yaml")

	out, err := run(t, "site", "--manifest", manifest, "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: BannerReport")
}

func TestSiteCmdOutputCreatesDirectories(t *testing.T) {
	manifest := writeManifest(t, testManifest)
	path := filepath.Join(t.TempDir(), "reports", "site", "report.json")

	out, err := run(t, "site", "--manifest", manifest, "--format", "json", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind": "BannerReport"`)
}

func TestSiteCmdUnwritableOutput(t *testing.T) {
	manifest := writeManifest(t, testManifest)

	// A regular file where the output's parent directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	path := filepath.Join(blocker, "report.yaml")

	out, err := run(t, "site", "--manifest", manifest, "--output", path)
	require.Error(t, err)
	assert.Empty(t, out, "report must not fall back to stdout")

	_, statErr := os.Stat(path)
	assert.Error(t, statErr)
}

func TestSiteCmdInvalidFormat(t *testing.T) {
	manifest := writeManifest(t, testManifest)
	_, err := run(t, "site", "--manifest", manifest, "--format", "xml")
	assert.Error(t, err)
}

func TestFragmentPath(t *testing.T) {
	dir := filepath.Join("out", "banners")

	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "/api/3.9.0/Suite", want: filepath.Join(dir, "api", "3.9.0", "Suite") + ".html"},
		{url: "/api/npm/4.1.0/Jasmine/", want: filepath.Join(dir, "api", "npm", "4.1.0", "Jasmine") + ".html"},
		{url: "/", want: filepath.Join(dir, "index") + ".html"},
		{url: "/../../etc/passwd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := fragmentPath(dir, tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
