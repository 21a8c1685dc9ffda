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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Banner outcome metrics
	bannersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vbanner_banners_total",
			Help: "Total number of evaluated pages by banner status",
		},
		[]string{"status"},
	)
	pagesSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vbanner_pages_skipped_total",
			Help: "Total number of pages that got no banner, by reason",
		},
		[]string{"reason"},
	)

	// Site rendering metrics
	renderSiteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vbanner_render_site_duration_seconds",
			Help:    "Duration of rendering all pages of a site in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)
)
