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
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	vberrors "github.com/jasmine/vbanner/pkg/errors"
	"github.com/jasmine/vbanner/pkg/header"
)

// Site is a Registry that also lists the pages to render.
type Site interface {
	Registry
	Pages() []Page
}

// Summary counts pages by outcome.
type Summary struct {
	Pages      int `json:"pages" yaml:"pages"`
	Older      int `json:"older" yaml:"older"`
	Prerelease int `json:"prerelease" yaml:"prerelease"`
	Skipped    int `json:"skipped" yaml:"skipped"`
}

// Report is the outcome of rendering every page of a site.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Summary Summary  `json:"summary" yaml:"summary"`
	Results []Result `json:"results" yaml:"results"`
}

// SiteOption configures RenderSite.
type SiteOption func(*siteConfig)

type siteConfig struct {
	concurrency int
	version     string
	source      string
}

// WithConcurrency bounds the number of pages evaluated at once.
// Values below 1 use GOMAXPROCS.
func WithConcurrency(n int) SiteOption {
	return func(c *siteConfig) {
		c.concurrency = n
	}
}

// WithToolVersion stamps the report header with the generating tool version.
func WithToolVersion(v string) SiteOption {
	return func(c *siteConfig) {
		c.version = v
	}
}

// WithSource records where the site came from, such as the manifest path, in
// the report header.
func WithSource(source string) SiteOption {
	return func(c *siteConfig) {
		c.source = source
	}
}

// RenderSite evaluates every page of site in parallel and returns a report
// sorted by URL.
//
// Pages whose linked collection is missing or has no stable version are
// logged and recorded with StatusNone and a reason instead of failing the
// run. Any other error, including context cancellation, aborts the run.
func RenderSite(ctx context.Context, g *Generator, site Site, opts ...SiteOption) (*Report, error) {
	cfg := &siteConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.concurrency < 1 {
		cfg.concurrency = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	defer func() {
		renderSiteDuration.Observe(time.Since(start).Seconds())
	}()

	pages := site.Pages()
	results := make([]Result, len(pages))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.concurrency)

	for i, page := range pages {
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := g.Evaluate(page, site)
			if err != nil {
				reason, ok := skipReason(err)
				if !ok {
					return fmt.Errorf("failed to render %q: %w", page.URL, err)
				}
				slog.Warn("nothing to link to, skipping banner",
					"url", page.URL,
					"collection", page.Collection,
					"error", err)
				r = &Result{
					URL:        page.URL,
					Collection: page.Collection,
					Status:     StatusNone,
					Reason:     reason,
				}
			}

			results[i] = *r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].URL < results[j].URL
	})

	report := &Report{
		Header: *header.New(
			header.WithKind(header.KindBannerReport),
			header.WithAPIVersion(header.APIVersion),
			header.WithTimestamp(start),
			header.WithMetadata("version", cfg.version),
			header.WithMetadata("manifest", cfg.source),
		),
		Results: results,
	}
	report.Summary = summarize(results)

	slog.Info("site rendered",
		"pages", report.Summary.Pages,
		"older", report.Summary.Older,
		"prerelease", report.Summary.Prerelease,
		"skipped", report.Summary.Skipped,
		"duration", time.Since(start))

	return report, nil
}

// skipReason maps errors that should suppress a banner, rather than fail
// the run, to a result reason.
func skipReason(err error) (string, bool) {
	switch {
	case vberrors.HasCode(err, vberrors.ErrCodeNoStableVersion):
		return ReasonNoStableVersion, true
	case vberrors.HasCode(err, vberrors.ErrCodeNotFound):
		return ReasonCollectionNotFound, true
	default:
		return "", false
	}
}

func summarize(results []Result) Summary {
	s := Summary{Pages: len(results)}
	for _, r := range results {
		bannersTotal.WithLabelValues(string(r.Status)).Inc()
		switch r.Status {
		case StatusOlder:
			s.Older++
		case StatusPrerelease:
			s.Prerelease++
		default:
			s.Skipped++
			pagesSkippedTotal.WithLabelValues(r.Reason).Inc()
		}
	}
	return s
}
