package processors

import (
	"context"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/shared/datetimes"
)

// initTierSeries returns one zero-filled series per priority tier. Callers
// rely on every tier being present even when no record matched it.
func initTierSeries[T any](days int) map[models.PriorityTier][]T {
	out := make(map[models.PriorityTier][]T, len(models.PriorityTiers()))
	for _, tier := range models.PriorityTiers() {
		out[tier] = make([]T, days)
	}
	return out
}

// initAspectSeries returns one zero-filled series per aspect.
func initAspectSeries[T any](days int) map[models.Aspect][]T {
	out := make(map[models.Aspect][]T, len(models.Aspects()))
	for _, aspect := range models.Aspects() {
		out[aspect] = make([]T, days)
	}
	return out
}

// sumSeries adds the per-bucket values of the given keys into one series.
func sumSeries[K comparable](byKey map[K][]int64, keys []K, days int) []int64 {
	total := make([]int64, days)
	for _, key := range keys {
		for i, v := range byKey[key] {
			if i < days {
				total[i] += v
			}
		}
	}
	return total
}

func (p *processor) InvocationMetrics(ctx context.Context) (map[models.PriorityTier][]int64, error) {
	records, err := familyRecords("invocation", p.provider.InvocationRecords)(ctx)
	if err != nil {
		return nil, err
	}

	series := initTierSeries[int64](p.numberOfDays)
	for _, r := range records {
		tier := models.ParsePriorityTier(r.Tier)
		if tier == models.PriorityUnknown {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeInvocation, reasonUnknownTier).Inc()
			continue
		}
		idx := p.dayIndexMillis(r.TimestampMillis)
		if idx < 0 || idx >= p.numberOfDays {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeInvocation, reasonOutOfWindow).Inc()
			continue
		}
		series[tier][idx] += r.Count
	}
	return series, nil
}

// aspectInvocationSeries folds aspect-tagged invocation counts into per-day
// series, with the all series summing both sides.
func (p *processor) aspectInvocationSeries(ctx context.Context) (map[models.Aspect][]int64, error) {
	records, err := familyRecords("invocation by aspect", p.provider.AspectInvocationRecords)(ctx)
	if err != nil {
		return nil, err
	}

	series := initAspectSeries[int64](p.numberOfDays)
	for _, r := range records {
		aspect := models.ParseAspect(r.Aspect)
		if aspect == models.AspectUnknown {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeAspectInvocation, reasonUnknownAspect).Inc()
			continue
		}
		idx := p.dayIndexMillis(r.TimestampMillis)
		if idx < 0 || idx >= p.numberOfDays {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeAspectInvocation, reasonOutOfWindow).Inc()
			continue
		}
		series[aspect][idx] += r.Count
	}
	series[models.AspectAll] = sumSeries(series,
		[]models.Aspect{models.AspectAuthenticated, models.AspectUnauthenticated}, p.numberOfDays)
	return series, nil
}

func (p *processor) RejectionMetrics(ctx context.Context) (map[models.Aspect][]int64, error) {
	records, err := familyRecords("rejection", p.provider.RejectionRecords)(ctx)
	if err != nil {
		return nil, err
	}

	series := initAspectSeries[int64](p.numberOfDays)
	for _, r := range records {
		idx := p.dayIndexSeconds(r.TimestampSeconds)
		if idx < 0 || idx >= p.numberOfDays {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeRejection, reasonOutOfWindow).Inc()
			continue
		}
		// A rejection with no actor was thrown before the caller authenticated.
		if r.ActorID == "" {
			series[models.AspectUnauthenticated][idx] += r.Count
		} else {
			series[models.AspectAuthenticated][idx] += r.Count
		}
	}
	series[models.AspectAll] = sumSeries(series,
		[]models.Aspect{models.AspectAuthenticated, models.AspectUnauthenticated}, p.numberOfDays)
	return series, nil
}

func (p *processor) ErrorAspectMetrics(ctx context.Context) ([]*models.ErrorMetricDay, error) {
	records, err := familyRecords("error by aspect", p.provider.ErrorAspectRecords)(ctx)
	if err != nil {
		return nil, err
	}

	days := p.newErrorDayList()
	for _, r := range records {
		aspect := models.ParseAspect(r.Aspect)
		if aspect == models.AspectUnknown {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeErrorAspect, reasonUnknownAspect).Inc()
			continue
		}
		for _, day := range days {
			if datetimes.SameDay(r.TimestampMillis, day.Date, p.cfg.Location) {
				day.Add(aspect, r.StatusCode, r.Count)
				break
			}
		}
	}
	return days, nil
}

// newErrorDayList builds the per-day list for error-by-aspect metrics, most
// recent day first. The historic window starts at yesterday.
func (p *processor) newErrorDayList() []*models.ErrorMetricDay {
	days := make([]*models.ErrorMetricDay, 0, p.numberOfDays)
	date := datetimes.StartOfDay(p.now)
	if !p.period.IncludesCurrentDay() {
		date = date.AddDate(0, 0, -1)
	}
	for i := 0; i < p.numberOfDays; i++ {
		days = append(days, models.NewErrorMetricDay(date))
		date = date.AddDate(0, 0, -1)
	}
	return days
}

// Record type tags reused for drop counters.
const (
	recordTypeInvocation       = "invocation"
	recordTypeAspectInvocation = "invocation_by_aspect"
	recordTypeRejection        = "rejection"
	recordTypeErrorAspect      = "error_by_aspect"
	recordTypeResponseTime     = "response_time"
	recordTypeTPS              = "tps"
	recordTypePerformance      = "performance"
	recordTypeOutage           = "outage"
	recordTypeAuthorisation    = "authorisation"
)
