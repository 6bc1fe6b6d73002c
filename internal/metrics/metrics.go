// Package metrics exposes the app's prometheus collectors. The /metrics
// endpoint itself is only mounted when METRICS_ENABLED is set.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PricingComputations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "costurela_pricing_computations_total",
		Help: "Price computations run, persisted and preview alike.",
	})

	AnalyticsRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "costurela_analytics_refreshes_total",
		Help: "Portfolio analytics aggregations run.",
	})

	ReportExports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "costurela_report_exports_total",
		Help: "Portfolio reports exported to xlsx.",
	})
)
