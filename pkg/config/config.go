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

// Package config loads optional vbanner settings from a YAML or JSON file.
//
//	kind: BannerConfig
//	escapeHTML: true
//	concurrency: 8
//	categories:
//	  browser-runner-api:
//	    displayName: jasmine-browser-runner
//	  api:
//	    prefix: /api/
package config

import (
	"fmt"
	"sort"

	"github.com/jasmine/vbanner/pkg/banner"
	"github.com/jasmine/vbanner/pkg/defaults"
	vberrors "github.com/jasmine/vbanner/pkg/errors"
	"github.com/jasmine/vbanner/pkg/header"
	"github.com/jasmine/vbanner/pkg/serializer"
)

// CategoryOverride replaces parts of a built-in category definition.
// Empty fields keep the default.
type CategoryOverride struct {
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Prefix      string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// Config holds generator settings.
type Config struct {
	header.Header `json:",inline" yaml:",inline"`

	// EscapeHTML escapes interpolated values in banner HTML.
	EscapeHTML bool `json:"escapeHTML,omitempty" yaml:"escapeHTML,omitempty"`

	// EdgeLabel replaces the "Edge" link text in older-version banners.
	EdgeLabel string `json:"edgeLabel,omitempty" yaml:"edgeLabel,omitempty"`

	// Concurrency bounds parallel page evaluation; 0 means GOMAXPROCS.
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`

	Categories map[string]CategoryOverride `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	cfg, err := serializer.FromFile[Config](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown kinds, unknown categories and negative concurrency.
func (c *Config) Validate() error {
	if c.Kind != "" && c.Kind != header.KindBannerConfig {
		return vberrors.NewWithContext(vberrors.ErrCodeInvalidRequest,
			"unexpected document kind",
			map[string]any{"kind": c.Kind.String(), "expected": header.KindBannerConfig.String()})
	}

	if c.Concurrency < 0 || c.Concurrency > defaults.MaxConcurrency {
		return vberrors.NewWithContext(vberrors.ErrCodeInvalidRequest,
			"concurrency out of range",
			map[string]any{"concurrency": c.Concurrency, "max": defaults.MaxConcurrency})
	}

	for name := range c.Categories {
		if _, err := banner.ParseCategory(name); err != nil {
			return vberrors.Wrap(vberrors.ErrCodeInvalidRequest,
				fmt.Sprintf("supported categories: %v", banner.SupportedCategories()), err)
		}
	}

	return nil
}

// Options converts the config into generator options.
// A nil Config yields no options.
func (c *Config) Options() []banner.Option {
	if c == nil {
		return nil
	}

	opts := []banner.Option{
		banner.WithEscapeHTML(c.EscapeHTML),
		banner.WithEdgeLabel(c.EdgeLabel),
	}

	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		o := c.Categories[name]
		cat := banner.Category(name)
		opts = append(opts,
			banner.WithDisplayName(cat, o.DisplayName),
			banner.WithPrefix(cat, o.Prefix),
		)
	}

	return opts
}
