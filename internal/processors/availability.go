package processors

import (
	"context"
	"sort"
	"time"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/shared/datetimes"

	"github.com/shopspring/decimal"
)

// AvailabilityMetrics returns the per-month availability percentage for each
// aspect, most recent month first. Scheduled maintenance is carved out of the
// measurement window before incident downtime is applied:
//
//	availability = (window - scheduled - incident) / (window - scheduled)
//
// The series length is the requested month count clamped to the months of
// recorded outage history and to the metrics start date, so a provider with
// three months of history reports three entries even when twelve were asked
// for.
func (p *processor) AvailabilityMetrics(ctx context.Context) (map[models.Aspect][]decimal.Decimal, error) {
	records, err := familyRecords("availability", p.provider.OutageRecords)(ctx)
	if err != nil {
		return nil, err
	}

	outages := make([]models.OutageRecord, 0, len(records))
	for _, r := range records {
		if r.TimeTo < r.TimeFrom {
			metricRecordsDroppedTotal.WithLabelValues(recordTypeOutage, reasonInvalidRange).Inc()
			continue
		}
		outages = append(outages, r)
	}

	months := p.monthsToReport(outages)
	out := make(map[models.Aspect][]decimal.Decimal, len(models.Aspects()))
	for _, aspect := range models.Aspects() {
		series := make([]decimal.Decimal, 0, months)
		for i := 0; i < months; i++ {
			from, to := p.monthWindow(i)
			series = append(series, availabilityForRange(outages, aspect, from, to))
		}
		out[aspect] = series
	}
	return out, nil
}

// monthsToReport clamps the requested month count to the recorded history.
// With no history at all, a strictly historic request reports nothing and a
// combined request reports only the current month.
func (p *processor) monthsToReport(outages []models.OutageRecord) int {
	requested := p.numberOfMonths
	if requested <= 1 {
		return requested
	}
	if len(outages) == 0 {
		if p.period == models.PeriodHistoric {
			return 0
		}
		return 1
	}

	earliest := outages[0].TimeFrom
	for _, o := range outages[1:] {
		if o.TimeFrom < earliest {
			earliest = o.TimeFrom
		}
	}
	// History is counted from the earliest-outage month through the last
	// reported month inclusive, which for the historic period is the month
	// before now, not the month of now.
	anchor := p.availabilityLastDate
	earliestMonth := datetimes.StartOfMonth(time.Unix(earliest, 0).In(p.cfg.Location))
	history := datetimes.MonthsBetween(earliestMonth, anchor) + 1
	sinceStart := datetimes.MonthsBetween(datetimes.StartOfMonth(p.cfg.StartDate), anchor) + 1

	return min(requested, max(history, 0), max(sinceStart, 0))
}

// monthWindow returns the epoch-second bounds [from, to) of the i-th reported
// month, where month 0 ends at the availability reference instant.
func (p *processor) monthWindow(i int) (int64, int64) {
	start := datetimes.StartOfMonth(p.availabilityLastDate).AddDate(0, -i, 0)
	end := start.AddDate(0, 1, 0)
	if end.After(p.availabilityLastDate) {
		end = p.availabilityLastDate
	}
	return start.Unix(), end.Unix()
}

// availabilityForRange computes one month's availability for one aspect. An
// empty effective window (fully scheduled, or a zero-length month slice)
// reports full availability.
func availabilityForRange(outages []models.OutageRecord, aspect models.Aspect, from, to int64) decimal.Decimal {
	var scheduled, incidents []interval
	for _, o := range outages {
		if !aspectMatches(o.Aspect, aspect) {
			continue
		}
		if o.TimeFrom < from || o.TimeFrom >= to {
			continue
		}
		// An outage belongs wholly to the month it starts in, spill-over
		// past month end included.
		iv := interval{from: o.TimeFrom, to: o.TimeTo}
		if o.Kind == models.OutageScheduled {
			scheduled = append(scheduled, iv)
		} else {
			incidents = append(incidents, iv)
		}
	}

	window := to - from
	scheduledSeconds := mergedSeconds(scheduled)
	incidentSeconds := mergedSeconds(incidents)

	denominator := window - scheduledSeconds
	if denominator <= 0 {
		return decimalOne
	}
	numerator := max(denominator-incidentSeconds, 0)
	return decimal.NewFromInt(numerator).DivRound(decimal.NewFromInt(denominator), ratioScale)
}

// aspectMatches reports whether an outage recorded for recordAspect affects
// the series for seriesAspect. The all marker matches in either direction.
func aspectMatches(recordAspect, seriesAspect models.Aspect) bool {
	if recordAspect == models.AspectUnknown {
		return false
	}
	return recordAspect == seriesAspect ||
		recordAspect == models.AspectAll ||
		seriesAspect == models.AspectAll
}

type interval struct {
	from int64
	to   int64
}

// mergedSeconds returns the total covered duration of a set of possibly
// overlapping intervals. Duplicates are removed first; a single cursor sweep
// over the sorted remainder guarantees overlap is never double-counted.
func mergedSeconds(intervals []interval) int64 {
	if len(intervals) == 0 {
		return 0
	}

	seen := make(map[interval]struct{}, len(intervals))
	unique := intervals[:0]
	for _, iv := range intervals {
		if _, dup := seen[iv]; dup {
			continue
		}
		seen[iv] = struct{}{}
		unique = append(unique, iv)
	}

	sort.Slice(unique, func(i, j int) bool {
		if unique[i].from == unique[j].from {
			return unique[i].to < unique[j].to
		}
		return unique[i].from < unique[j].from
	})

	var total int64
	cursor := unique[0].from
	for _, iv := range unique {
		start := max(iv.from, cursor)
		if iv.to > start {
			total += iv.to - start
			cursor = iv.to
		}
	}
	return total
}
