// Package processors turns raw metric records into day- and month-bucketed
// reporting series. Each operation covers one metric family and returns fully
// populated dimension maps: every enum value gets a series even when no
// record matched it.
package processors

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/providers"
	"cdr-metrics/internal/shared/datetimes"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=processor.go -destination=mocks/processor_mock.go -package=mocks

// MetricsProcessor computes the reporting series for one period.
type MetricsProcessor interface {
	InvocationMetrics(ctx context.Context) (map[models.PriorityTier][]int64, error)
	PerformanceMetrics(ctx context.Context) ([]decimal.Decimal, error)
	HourlyPerformanceMetrics(ctx context.Context) (map[models.PriorityTier][][]decimal.Decimal, error)
	AverageResponseMetrics(ctx context.Context) (map[models.PriorityTier][]decimal.Decimal, error)
	SessionCountMetrics(ctx context.Context) ([]int64, error)
	AverageTPSMetrics(ctx context.Context) (map[models.Aspect][]decimal.Decimal, error)
	PeakTPSMetrics(ctx context.Context) (map[models.Aspect][]decimal.Decimal, error)
	ErrorMetrics(ctx context.Context) ([]int64, error)
	ErrorAspectMetrics(ctx context.Context) ([]*models.ErrorMetricDay, error)
	RejectionMetrics(ctx context.Context) (map[models.Aspect][]int64, error)
	AvailabilityMetrics(ctx context.Context) (map[models.Aspect][]decimal.Decimal, error)
	AuthorisationMetrics(ctx context.Context) ([]*models.AuthorisationMetricDay, error)
	AbandonmentMetrics(ctx context.Context) ([]*models.AbandonmentByStageDay, error)
	ActiveAuthorisationMetrics(ctx context.Context) (models.CustomerTypeCount, error)
	CustomerCountMetrics(ctx context.Context) (int64, error)
	RecipientCountMetrics(ctx context.Context) (int64, error)
}

// Config carries the reporting parameters every aggregation depends on. It is
// resolved once from application configuration and passed in explicitly so
// the processors stay pure and testable.
type Config struct {
	Location           *time.Location
	StartDate          time.Time // earliest valid date for performance records, midnight in Location
	ConsentAbandonment time.Duration
	AuthCodeValidity   time.Duration
}

type processor struct {
	provider providers.MetricsDataProvider
	cfg      Config
	period   models.Period
	now      time.Time

	numberOfDays   int
	numberOfMonths int
	// countLastDate is the end-of-day instant day bucketing is anchored to.
	countLastDate time.Time
	// availabilityLastDate is the upper bound of the availability window.
	availabilityLastDate time.Time
}

// NewMetricsProcessor builds a processor for one period, anchored at now.
func NewMetricsProcessor(period models.Period, provider providers.MetricsDataProvider, cfg Config, now time.Time) (MetricsProcessor, error) {
	if _, err := models.ParsePeriod(string(period)); err != nil {
		return nil, errInvalidPeriod(err)
	}
	localNow := now.In(cfg.Location)
	return &processor{
		provider:             provider,
		cfg:                  cfg,
		period:               period,
		now:                  localNow,
		numberOfDays:         period.NumberOfDays(),
		numberOfMonths:       period.NumberOfMonths(),
		countLastDate:        period.CountLastDate(localNow),
		availabilityLastDate: period.AvailabilityLastDate(localNow),
	}, nil
}

// dayIndexSeconds maps an epoch-second timestamp to its day bucket. Negative
// or >= numberOfDays means out of window.
func (p *processor) dayIndexSeconds(tsSeconds int64) int {
	return datetimes.DayIndex(tsSeconds, p.countLastDate.Unix())
}

// dayIndexMillis maps an epoch-millisecond timestamp to its day bucket.
func (p *processor) dayIndexMillis(tsMillis int64) int {
	return datetimes.DayIndex(tsMillis/1000, p.countLastDate.Unix())
}

// familyRecords wraps a provider call, translating a missing snapshot section
// into a no-data error and anything else into an internal one.
func familyRecords[T any](family string, fetch func(context.Context) ([]T, error)) func(context.Context) ([]T, error) {
	return func(ctx context.Context) ([]T, error) {
		records, err := fetch(ctx)
		if err != nil {
			if errors.Is(err, providers.ErrNoData) {
				return nil, errNoData(family, err)
			}
			return nil, errInternalProviderFailed(family, err)
		}
		return records, nil
	}
}

func (p *processor) SessionCountMetrics(ctx context.Context) ([]int64, error) {
	records, err := familyRecords("session count", p.provider.SessionCountRecords)(ctx)
	if err != nil {
		return nil, err
	}
	return p.countSeries(records), nil
}

func (p *processor) ErrorMetrics(ctx context.Context) ([]int64, error) {
	records, err := familyRecords("error", p.provider.ErrorRecords)(ctx)
	if err != nil {
		return nil, err
	}
	return p.countSeries(records), nil
}

// countSeries folds untagged count records into a per-day series.
func (p *processor) countSeries(records []models.CountRecord) []int64 {
	series := make([]int64, p.numberOfDays)
	for _, r := range records {
		idx := p.dayIndexMillis(r.TimestampMillis)
		if idx < 0 || idx >= p.numberOfDays {
			continue
		}
		series[idx] += r.Count
	}
	return series
}

func (p *processor) CustomerCountMetrics(ctx context.Context) (int64, error) {
	counts, err := familyRecords("customer count", p.provider.CustomerCounts)(ctx)
	if err != nil {
		return 0, err
	}
	return lastOrZero(counts), nil
}

func (p *processor) RecipientCountMetrics(ctx context.Context) (int64, error) {
	counts, err := familyRecords("recipient count", p.provider.RecipientCounts)(ctx)
	if err != nil {
		return 0, err
	}
	return lastOrZero(counts), nil
}

// lastOrZero returns the most recent tally. The upstream export appends one
// row per evaluation, so the last row holds the current value.
func lastOrZero(counts []int64) int64 {
	if len(counts) == 0 {
		return 0
	}
	return counts[len(counts)-1]
}

func (p *processor) startDateMisconfigured() error {
	if p.cfg.StartDate.After(p.now) {
		return errStartDateMisconfigured(p.cfg.StartDate.Format(time.DateOnly))
	}
	return nil
}

func (p *processor) String() string {
	return fmt.Sprintf("processor(period=%s, days=%d, months=%d)", p.period, p.numberOfDays, p.numberOfMonths)
}
