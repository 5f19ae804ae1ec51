package processors

import (
	"cdr-metrics/internal/shared/metrics"
)

const (
	reasonUnknownTier   = "unknown_tier"
	reasonUnknownAspect = "unknown_aspect"
	reasonUnknownStatus = "unknown_status"
	reasonOutOfWindow   = "out_of_window"
	reasonInvalidRange  = "invalid_range"
)

var (
	// metricRecordsDroppedTotal counts records excluded during aggregation,
	// labelled by record type and the reason they were dropped. Out-of-window
	// drops are expected in steady state because snapshots can contain records
	// older than the requested reporting window.
	metricRecordsDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProcessor,
			Name:      "records_dropped_total",
		},
		[]string{metrics.FieldRecordType, metrics.FieldReason},
	)
)
