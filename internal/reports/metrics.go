package reports

import (
	"cdr-metrics/internal/shared/metrics"
)

var (
	metricReportsComputedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "reports_computed_total",
			Help:      "Total number of report computations, by period and outcome.",
		},
		[]string{metrics.FieldPeriod, metrics.FieldErrorCode},
	)

	metricReportDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "report_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldPeriod},
	)
)
