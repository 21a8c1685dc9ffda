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

// Package serializer reads site manifests and configuration, and writes
// banner reports, in JSON, YAML or a flattened table.
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, report); err != nil {
//		log.Fatal(err)
//	}
//
//	manifest, err := serializer.FromFile[site.Manifest]("site.yaml")
//
// Table format is write-only; it flattens nested structures into
// dotted FIELD/VALUE rows.
package serializer

import "context"

// Serializer is an interface for serializing documents.
// The context allows callers to abandon a write that has not started yet.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}
