// Package reports assembles full metrics reports, one processor operation per
// metric family, and serves the combined period by stitching the current-day
// report onto a cached historic one.
package reports

import (
	"context"
	"time"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/processors"
	"cdr-metrics/internal/providers"
	"cdr-metrics/internal/shared/loggers"
	"cdr-metrics/internal/shared/metrics"
	"cdr-metrics/internal/shared/svcerrors"
	"cdr-metrics/internal/shared/ulid"
	"cdr-metrics/internal/stores"
)

// ReportService computes metrics reports for a reporting period.
type ReportService interface {
	GetReport(ctx context.Context, period models.Period) (*models.MetricsReport, error)
}

type reportService struct {
	provider providers.MetricsDataProvider
	cfg      processors.Config
	cache    stores.ReportCache
	clock    func() time.Time
}

// NewReportService wires a report service. A nil clock means wall time.
func NewReportService(provider providers.MetricsDataProvider, cfg processors.Config, cache stores.ReportCache, clock func() time.Time) ReportService {
	if clock == nil {
		clock = time.Now
	}
	return &reportService{
		provider: provider,
		cfg:      cfg,
		cache:    cache,
		clock:    clock,
	}
}

func (s *reportService) GetReport(ctx context.Context, period models.Period) (*models.MetricsReport, error) {
	start := s.clock()
	report, err := s.getReport(ctx, period)
	metricReportDurationSeconds.WithLabelValues(string(period)).Observe(s.clock().Sub(start).Seconds())

	if err != nil {
		svcErr, ok := svcerrors.As(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		metricReportsComputedTotal.WithLabelValues(string(period), svcErr.Code).Inc()
		loggers.Ctx(ctx).Error().
			Err(err).
			Str(loggers.FieldPeriod, string(period)).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("report computation failed")
		return nil, svcErr
	}

	metricReportsComputedTotal.WithLabelValues(string(period), metrics.ValueNoError).Inc()
	loggers.Ctx(ctx).Info().
		Str(loggers.FieldPeriod, string(period)).
		Str(loggers.FieldReportID, report.ReportID).
		Dur(loggers.FieldDuration, s.clock().Sub(start)).
		Msg("report computed")
	return report, nil
}

func (s *reportService) getReport(ctx context.Context, period models.Period) (*models.MetricsReport, error) {
	switch period {
	case models.PeriodCurrent:
		return s.compute(ctx, models.PeriodCurrent)
	case models.PeriodHistoric:
		return s.historicReport(ctx)
	case models.PeriodAll:
		current, err := s.compute(ctx, models.PeriodCurrent)
		if err != nil {
			return nil, err
		}
		historic, err := s.historicReport(ctx)
		if err != nil {
			return nil, err
		}
		current.Append(historic)
		current.Period = models.PeriodAll
		return current, nil
	default:
		return nil, svcerrors.NewInvalidArgumentError("MET_1001", "invalid reporting period", nil)
	}
}

// historicReport serves the twelve-month report from cache when a fresh copy
// exists, recomputing and re-caching otherwise.
func (s *reportService) historicReport(ctx context.Context) (*models.MetricsReport, error) {
	if cached, ok := s.cache.Get(ctx, models.PeriodHistoric); ok {
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldPeriod, string(models.PeriodHistoric)).
			Str(loggers.FieldReportID, cached.ReportID).
			Msg("serving cached historic report")
		return cached, nil
	}

	report, err := s.compute(ctx, models.PeriodHistoric)
	if err != nil {
		return nil, err
	}
	s.cache.Put(ctx, models.PeriodHistoric, report)
	return report, nil
}

// compute runs every metric family for one period and assembles the report.
func (s *reportService) compute(ctx context.Context, period models.Period) (*models.MetricsReport, error) {
	now := s.clock()
	proc, err := processors.NewMetricsProcessor(period, s.provider, s.cfg, now)
	if err != nil {
		return nil, err
	}

	report := &models.MetricsReport{
		ReportID:    ulid.NewReportID(),
		RequestTime: now,
		Period:      period,
	}

	if report.Invocations, err = proc.InvocationMetrics(ctx); err != nil {
		return nil, err
	}
	if report.Performance, err = proc.PerformanceMetrics(ctx); err != nil {
		return nil, err
	}
	if report.HourlyPerformance, err = proc.HourlyPerformanceMetrics(ctx); err != nil {
		return nil, err
	}
	if report.AverageResponse, err = proc.AverageResponseMetrics(ctx); err != nil {
		return nil, err
	}
	if report.SessionCounts, err = proc.SessionCountMetrics(ctx); err != nil {
		return nil, err
	}
	if report.AverageTPS, err = proc.AverageTPSMetrics(ctx); err != nil {
		return nil, err
	}
	if report.PeakTPS, err = proc.PeakTPSMetrics(ctx); err != nil {
		return nil, err
	}
	if report.Errors, err = proc.ErrorMetrics(ctx); err != nil {
		return nil, err
	}
	if report.ErrorDays, err = proc.ErrorAspectMetrics(ctx); err != nil {
		return nil, err
	}
	if report.Rejections, err = proc.RejectionMetrics(ctx); err != nil {
		return nil, err
	}
	if report.Availability, err = proc.AvailabilityMetrics(ctx); err != nil {
		return nil, err
	}
	if report.AuthorisationDays, err = proc.AuthorisationMetrics(ctx); err != nil {
		return nil, err
	}
	if report.AbandonmentDays, err = proc.AbandonmentMetrics(ctx); err != nil {
		return nil, err
	}
	if report.ActiveAuthorisations, err = proc.ActiveAuthorisationMetrics(ctx); err != nil {
		return nil, err
	}
	if report.CustomerCount, err = proc.CustomerCountMetrics(ctx); err != nil {
		return nil, err
	}
	if report.RecipientCount, err = proc.RecipientCountMetrics(ctx); err != nil {
		return nil, err
	}
	return report, nil
}
