// Package providers supplies parsed metric records to the processors. The
// snapshot provider reads the positional-row export document produced by the
// upstream stream processor.
package providers

import (
	"context"
	"errors"

	"cdr-metrics/internal/models"
)

//go:generate mockgen -source=metrics_data_provider.go -destination=mocks/metrics_data_provider_mock.go -package=mocks

// ErrNoData marks a metric family whose section is absent from the source
// document. Callers translate it into their own no-data error.
var ErrNoData = errors.New("metric data unavailable")

// MetricsDataProvider serves parsed records for each metric family. A method
// returns ErrNoData when the family's section is missing from the source;
// malformed rows inside a present section are dropped, not surfaced.
type MetricsDataProvider interface {
	InvocationRecords(ctx context.Context) ([]models.InvocationRecord, error)
	AspectInvocationRecords(ctx context.Context) ([]models.AspectRecord, error)
	SuccessfulInvocationRecords(ctx context.Context) ([]models.CountRecord, error)
	ResponseTimeRecords(ctx context.Context) ([]models.ResponseTimeRecord, error)
	PerformanceRecords(ctx context.Context) ([]models.PerformanceRecord, error)
	SessionCountRecords(ctx context.Context) ([]models.CountRecord, error)
	ErrorRecords(ctx context.Context) ([]models.CountRecord, error)
	ErrorAspectRecords(ctx context.Context) ([]models.ErrorAspectRecord, error)
	RejectionRecords(ctx context.Context) ([]models.RejectionRecord, error)
	TPSRecords(ctx context.Context) ([]models.TPSRecord, error)
	OutageRecords(ctx context.Context) ([]models.OutageRecord, error)
	AuthorisationRecords(ctx context.Context) ([]models.AuthorisationRecord, error)
	StatusChangeRecords(ctx context.Context) ([]models.StatusChangeRecord, error)
	StageEventRecords(ctx context.Context) ([]models.StageEventRecord, error)
	CustomerCounts(ctx context.Context) ([]int64, error)
	RecipientCounts(ctx context.Context) ([]int64, error)
}
