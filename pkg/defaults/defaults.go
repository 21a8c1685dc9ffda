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

package defaults

import "time"

// Site run limits.
const (
	// SiteRenderTimeout is the default timeout for evaluating every page of a
	// site manifest.
	SiteRenderTimeout = 5 * time.Minute

	// MaxConcurrency is the largest accepted number of parallel page
	// evaluations.
	MaxConcurrency = 256
)
