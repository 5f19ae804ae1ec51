package providers

import (
	"cdr-metrics/internal/shared/metrics"
)

var (
	metricRowsDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProvider,
			Name:      "rows_dropped_total",
			Help:      "Total number of malformed snapshot rows dropped during parsing.",
		},
		[]string{metrics.FieldRecordType},
	)
)
