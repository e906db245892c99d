// Package metrics defines and registers all custom Prometheus metrics for the
// AgencyHub API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agencyhub"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "inactive"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// DocumentsGeneratedTotal counts PDF documents produced by the report module.
// Label:
//   - type: "client_report", "financial_report", "project_report", "invoice", or "quote"
var DocumentsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_generated_total",
		Help:      "Total number of PDF documents generated, by document type.",
	},
	[]string{"type"},
)

// DocumentGenerationDuration measures how long a single PDF takes to render.
// Label:
//   - type: the document type (see DocumentsGeneratedTotal)
var DocumentGenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "document_generation_duration_seconds",
		Help:      "Duration of PDF document rendering.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"type"},
)

// DashboardCacheTotal counts dashboard metric cache lookups.
// Label:
//   - result: "hit" or "miss"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
