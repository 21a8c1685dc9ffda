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
)

// Category is a documentation collection that can carry a version banner.
// Its value is the collection name used by the site registry.
type Category string

// Supported categories.
const (
	CategoryAPIReference               Category = "api"
	CategoryPackageManagerAPIReference Category = "npm-api"
	CategoryRunnerAPIReference         Category = "browser-runner-api"
	CategoryArchivedDocs               Category = "archives"
)

// String returns the collection name.
func (c Category) String() string {
	return string(c)
}

// CategorySpec describes how pages of one category are addressed and named.
type CategorySpec struct {
	// Prefix is stripped from page URLs to find the version token and is
	// used to build links.
	Prefix string `json:"prefix" yaml:"prefix"`

	// DisplayName is the product name shown in banner text.
	DisplayName string `json:"displayName" yaml:"displayName"`

	// LinkTarget is the category whose latest stable version banner links
	// point into. It is the category itself except for archives.
	LinkTarget Category `json:"linkTarget" yaml:"linkTarget"`

	// PrereleaseAware selects the pre-release message for pre-release pages.
	// Archived pages are permanently superseded and always get the
	// older-version message.
	PrereleaseAware bool `json:"prereleaseAware" yaml:"prereleaseAware"`
}

// DefaultCategorySpecs returns the built-in category table.
func DefaultCategorySpecs() map[Category]CategorySpec {
	return map[Category]CategorySpec{
		CategoryAPIReference: {
			Prefix:          "/api/",
			DisplayName:     "Jasmine",
			LinkTarget:      CategoryAPIReference,
			PrereleaseAware: true,
		},
		CategoryPackageManagerAPIReference: {
			Prefix:          "/api/npm/",
			DisplayName:     "Jasmine",
			LinkTarget:      CategoryPackageManagerAPIReference,
			PrereleaseAware: true,
		},
		CategoryRunnerAPIReference: {
			Prefix:          "/api/browser-runner/",
			DisplayName:     "jasmine-browser-runner",
			LinkTarget:      CategoryRunnerAPIReference,
			PrereleaseAware: true,
		},
		CategoryArchivedDocs: {
			Prefix:      "/archives/",
			DisplayName: "Jasmine",
			LinkTarget:  CategoryAPIReference,
		},
	}
}

// ParseCategory parses a collection name into a Category. Names must match
// exactly.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryAPIReference:
		return CategoryAPIReference, nil
	case CategoryPackageManagerAPIReference:
		return CategoryPackageManagerAPIReference, nil
	case CategoryRunnerAPIReference:
		return CategoryRunnerAPIReference, nil
	case CategoryArchivedDocs:
		return CategoryArchivedDocs, nil
	default:
		return "", fmt.Errorf("unsupported category: %q", s)
	}
}

// SupportedCategories returns all supported collection names.
func SupportedCategories() []string {
	return []string{
		string(CategoryAPIReference),
		string(CategoryPackageManagerAPIReference),
		string(CategoryRunnerAPIReference),
		string(CategoryArchivedDocs),
	}
}
