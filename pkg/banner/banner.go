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

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	vberrors "github.com/jasmine/vbanner/pkg/errors"
	"github.com/jasmine/vbanner/pkg/version"
)

// Status is the outcome of evaluating a page.
type Status string

const (
	// StatusNone means no banner is needed.
	StatusNone Status = "none"
	// StatusPrerelease means the page documents a pre-release version.
	StatusPrerelease Status = "prerelease"
	// StatusOlder means the page documents a superseded stable version.
	StatusOlder Status = "older"
)

// Reasons recorded for pages that get no banner.
const (
	ReasonCurrent             = "current"
	ReasonEdge                = "edge"
	ReasonUnsupportedCategory = "unsupported-category"
	ReasonNoStableVersion     = "no-stable-version"
	ReasonCollectionNotFound  = "collection-not-found"
)

// Result is the evaluation of a single page.
type Result struct {
	URL        string `json:"url" yaml:"url"`
	Collection string `json:"collection" yaml:"collection"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	Latest     string `json:"latest,omitempty" yaml:"latest,omitempty"`
	Status     Status `json:"status" yaml:"status"`
	Reason     string `json:"reason,omitempty" yaml:"reason,omitempty"`
	HTML       string `json:"html,omitempty" yaml:"html,omitempty"`
}

// Option configures a Generator.
type Option func(*Generator)

// WithEscapeHTML escapes interpolated values in banner HTML. Off by default:
// versions and page names come from the site's own file tree.
func WithEscapeHTML(escape bool) Option {
	return func(g *Generator) {
		g.escapeHTML = escape
	}
}

// WithDisplayName overrides the product name shown for a category.
func WithDisplayName(c Category, name string) Option {
	return func(g *Generator) {
		if name == "" {
			return
		}
		spec, ok := g.categories[c]
		if !ok {
			return
		}
		spec.DisplayName = name
		g.categories[c] = spec
	}
}

// WithPrefix overrides the URL prefix of a category.
func WithPrefix(c Category, prefix string) Option {
	return func(g *Generator) {
		if prefix == "" {
			return
		}
		spec, ok := g.categories[c]
		if !ok {
			return
		}
		spec.Prefix = prefix
		g.categories[c] = spec
	}
}

// WithEdgeLabel sets the text of the link to the edge docs in older-version
// banners. The label is title-cased, so "next release" renders as
// "Next Release". The link target is unchanged.
func WithEdgeLabel(label string) Option {
	return func(g *Generator) {
		if label == "" {
			return
		}
		g.edgeLabel = titleCase(label)
	}
}

// Generator decides whether a page needs a version banner and renders it.
// A Generator is immutable after New and safe for concurrent use.
type Generator struct {
	categories map[Category]CategorySpec
	escapeHTML bool
	edgeLabel  string
}

// New creates a Generator with the default category table.
func New(opts ...Option) *Generator {
	g := &Generator{
		categories: DefaultCategorySpecs(),
		edgeLabel:  titleCase(version.Edge),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// titleCase builds a fresh Caser per call; Casers keep state and are not
// safe for concurrent use.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Spec returns the configuration of category c.
func (g *Generator) Spec(c Category) (CategorySpec, bool) {
	spec, ok := g.categories[c]
	return spec, ok
}

// LatestStable returns the latest stable version token of category c.
func (g *Generator) LatestStable(c Category, reg Registry) (string, error) {
	entries, ok := reg.Entries(c.String())
	if !ok {
		return "", vberrors.NewWithContext(vberrors.ErrCodeNotFound,
			"collection not found in site registry",
			map[string]any{"collection": c.String()})
	}

	latest, err := version.LatestStable(entries)
	if err != nil {
		return "", fmt.Errorf("collection %q: %w", c, err)
	}
	return latest.Raw, nil
}

// Render returns the banner HTML for page, or "" when no banner is warranted.
//
// Pages in unsupported collections get no banner and no error. When the
// linked collection has no stable version an error with code
// ErrCodeNoStableVersion is returned; callers should log it and skip the
// banner.
func (g *Generator) Render(page Page, reg Registry) (string, error) {
	r, err := g.Evaluate(page, reg)
	if err != nil {
		return "", err
	}
	return r.HTML, nil
}

// Evaluate classifies page and renders its banner.
func (g *Generator) Evaluate(page Page, reg Registry) (*Result, error) {
	result := &Result{
		URL:        page.URL,
		Collection: page.Collection,
		Status:     StatusNone,
	}

	cat, err := ParseCategory(page.Collection)
	if err != nil {
		slog.Debug("skipping page in unsupported collection", "url", page.URL, "collection", page.Collection)
		result.Reason = ReasonUnsupportedCategory
		return result, nil
	}
	spec := g.categories[cat]

	result.Version = ExtractVersionToken(page.URL, spec.Prefix)
	if spec.PrereleaseAware && version.IsEdge(result.Version) {
		result.Reason = ReasonEdge
		return result, nil
	}

	latest, err := g.LatestStable(spec.LinkTarget, reg)
	if err != nil {
		return nil, err
	}
	result.Latest = latest

	if spec.PrereleaseAware && result.Version == latest {
		result.Reason = ReasonCurrent
		return result, nil
	}

	result.Status, result.HTML = g.Message(result.Version, latest, cat, page.Name())

	slog.Debug("evaluated page",
		"url", page.URL,
		"version", result.Version,
		"latest", latest,
		"status", result.Status)

	return result, nil
}

// Message selects and renders the banner for a page of category c at
// thisVersion, given the latest stable version. Returns StatusNone and ""
// when the page is current or edge; archived pages always get the
// older-version message.
func (g *Generator) Message(thisVersion, latest string, c Category, pageName string) (Status, string) {
	spec, ok := g.categories[c]
	if !ok {
		return StatusNone, ""
	}

	if spec.PrereleaseAware {
		if version.IsEdge(thisVersion) || thisVersion == latest {
			return StatusNone, ""
		}
	}

	prefix := spec.Prefix
	if target, ok := g.categories[spec.LinkTarget]; ok {
		prefix = target.Prefix
	}

	m := messageArgs{
		name:     spec.DisplayName,
		version:  thisVersion,
		latest:   latest,
		prefix:   prefix,
		pageName: pageName,
	}
	if g.escapeHTML {
		m = m.escaped()
	}

	if spec.PrereleaseAware && version.IsPrerelease(thisVersion) {
		return StatusPrerelease, wrap(prereleaseMessage(m))
	}
	return StatusOlder, wrap(olderMessage(m, g.edgeLabel))
}
