package processors

import (
	"context"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/shared/datetimes"

	"github.com/shopspring/decimal"
)

// All ratio metrics are reported at scale 3, rounded half-up.
const ratioScale = 3

var (
	decimalZero         = decimal.New(0, -ratioScale)
	decimalOne          = decimal.New(1000, -ratioScale)
	decimalSecondsInDay = decimal.NewFromInt(datetimes.SecondsInDay)
)

// divideSeries divides two equal-length series element-wise at scale 3.
// Division by zero yields byZero instead of failing; a length mismatch is a
// hard error because it means the two families were bucketed inconsistently.
func divideSeries(dividend, divisor []decimal.Decimal, byZero decimal.Decimal) ([]decimal.Decimal, error) {
	if len(dividend) != len(divisor) {
		return nil, errSeriesLengthMismatch(len(dividend), len(divisor))
	}
	out := make([]decimal.Decimal, len(dividend))
	for i := range dividend {
		if divisor[i].IsZero() {
			out[i] = byZero
			continue
		}
		out[i] = dividend[i].DivRound(divisor[i], ratioScale)
	}
	return out, nil
}

// intSeriesToDecimal converts a count series for use in division.
func intSeriesToDecimal(series []int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(series))
	for i, v := range series {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

// PerformanceMetrics returns the per-day ratio of successful invocations to
// total invocations. Days without traffic report a perfect 1.000.
func (p *processor) PerformanceMetrics(ctx context.Context) ([]decimal.Decimal, error) {
	successful, err := familyRecords("successful invocation", p.provider.SuccessfulInvocationRecords)(ctx)
	if err != nil {
		return nil, err
	}
	invocations, err := p.InvocationMetrics(ctx)
	if err != nil {
		return nil, err
	}

	successSeries := p.countSeries(successful)
	totalSeries := sumSeries(invocations, models.PriorityTiers(), p.numberOfDays)
	return divideSeries(intSeriesToDecimal(successSeries), intSeriesToDecimal(totalSeries), decimalOne)
}

// AverageResponseMetrics returns the per-day average response time in seconds
// for each priority tier. Days without invocations report 0.000.
func (p *processor) AverageResponseMetrics(ctx context.Context) (map[models.PriorityTier][]decimal.Decimal, error) {
	responseTimes, err := familyRecords("response time", p.provider.ResponseTimeRecords)(ctx)
	if err != nil {
		return nil, err
	}
	invocations, err := p.InvocationMetrics(ctx)
	if err != nil {
		return nil, err
	}

	totals := initTierSeries[decimal.Decimal](p.numberOfDays)
	for _, r := range responseTimes {
		tier := models.ParsePriorityTier(r.Tier)
		if tier == models.PriorityUnknown {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeResponseTime, reasonUnknownTier).Inc()
			continue
		}
		idx := p.dayIndexMillis(r.TimestampMillis)
		if idx < 0 || idx >= p.numberOfDays {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeResponseTime, reasonOutOfWindow).Inc()
			continue
		}
		totals[tier][idx] = totals[tier][idx].Add(decimal.NewFromFloat(r.TotalSeconds))
	}

	out := make(map[models.PriorityTier][]decimal.Decimal, len(totals))
	for _, tier := range models.PriorityTiers() {
		series, err := divideSeries(totals[tier], intSeriesToDecimal(invocations[tier]), decimalZero)
		if err != nil {
			return nil, err
		}
		out[tier] = series
	}
	return out, nil
}

// AverageTPSMetrics returns the per-day average transactions per second for
// each aspect: the day's transaction count spread over the day's seconds.
func (p *processor) AverageTPSMetrics(ctx context.Context) (map[models.Aspect][]decimal.Decimal, error) {
	counts, err := p.aspectInvocationSeries(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[models.Aspect][]decimal.Decimal, len(counts))
	for _, aspect := range models.Aspects() {
		series := make([]decimal.Decimal, p.numberOfDays)
		for i, count := range counts[aspect] {
			series[i] = decimal.NewFromInt(count).DivRound(decimalSecondsInDay, ratioScale)
		}
		out[aspect] = series
	}
	return out, nil
}

// PeakTPSMetrics returns the per-day peak transactions per second for each
// aspect as a running maximum over the per-second count events. The all
// series takes the maximum over every event regardless of aspect.
func (p *processor) PeakTPSMetrics(ctx context.Context) (map[models.Aspect][]decimal.Decimal, error) {
	records, err := familyRecords("tps", p.provider.TPSRecords)(ctx)
	if err != nil {
		return nil, err
	}

	peaks := initAspectSeries[int64](p.numberOfDays)
	for _, r := range records {
		idx := p.dayIndexSeconds(r.TimestampSeconds)
		if idx < 0 || idx >= p.numberOfDays {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeTPS, reasonOutOfWindow).Inc()
			continue
		}
		aspect := models.ParseAspect(r.Aspect)
		if aspect == models.AspectAuthenticated || aspect == models.AspectUnauthenticated {
			peaks[aspect][idx] = max(peaks[aspect][idx], r.TotalCount)
		} else if aspect == models.AspectUnknown {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeTPS, reasonUnknownAspect).Inc()
		}
		if aspect != models.AspectUnknown {
			peaks[models.AspectAll][idx] = max(peaks[models.AspectAll][idx], r.TotalCount)
		}
	}

	out := make(map[models.Aspect][]decimal.Decimal, len(peaks))
	for _, aspect := range models.Aspects() {
		series := make([]decimal.Decimal, p.numberOfDays)
		for i, v := range peaks[aspect] {
			series[i] = decimal.New(v*1000, -ratioScale)
		}
		out[aspect] = series
	}
	return out, nil
}
