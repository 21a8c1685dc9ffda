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

// Package header provides the common document header for vbanner site
// manifests, configuration files and banner reports.
//
// # Usage
//
//	h := header.New(
//	    header.WithKind(header.KindBannerReport),
//	    header.WithAPIVersion(header.APIVersion),
//	    header.WithTimestamp(time.Now()),
//	    header.WithMetadata("version", "v1.0.0"),
//	)
//
// Serialized form:
//
//	kind: BannerReport
//	apiVersion: vbanner.jasmine.github.io/v1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
//
// # Validation
//
// Header does not enforce validation. Readers of hand-written documents
// (manifests, configs) accept an empty kind and reject a kind that does not
// match what they expect.
package header
