package processors

import (
	"context"
	"fmt"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/shared/datetimes"

	"github.com/shopspring/decimal"
)

// HourlyPerformanceMetrics returns the per-tier performance grid: one row per
// reported day, one cell per hour, each holding the within-threshold ratio at
// scale 3. Cells with no traffic report a perfect 1.000. The current-day grid
// only extends to the hour containing now; historic rows cover all 24 hours.
//
// The day window is clamped so it never reaches back past the metrics start
// date, and the provider's records are validated against both bounds: a
// record preceding the start date or spanning more days than the window is a
// hard error, because it means the upstream query window and this one have
// drifted apart.
func (p *processor) HourlyPerformanceMetrics(ctx context.Context) (map[models.PriorityTier][][]decimal.Decimal, error) {
	if err := p.startDateMisconfigured(); err != nil {
		return nil, err
	}

	records, err := familyRecords("performance", p.provider.PerformanceRecords)(ctx)
	if err != nil {
		return nil, err
	}

	days := p.performanceDays()
	hours := 24
	if p.period == models.PeriodCurrent {
		hours = p.now.Hour() + 1
	}

	if err := p.validatePerformanceRange(records); err != nil {
		return nil, err
	}

	grid := make(map[models.PriorityTier][][]decimal.Decimal, len(models.PriorityTiers()))
	for _, tier := range models.PriorityTiers() {
		grid[tier] = newPerformanceGrid(days, hours)
	}

	for _, r := range records {
		tier := models.ParsePriorityTier(r.Tier)
		if tier == models.PriorityUnknown {
			metricRecordsDroppedTotal.WithLabelValues(recordTypePerformance, reasonUnknownTier).Inc()
			continue
		}
		dayIdx := p.dayIndexMillis(r.TimestampMillis)
		hour := datetimes.HourOf(r.TimestampMillis, p.cfg.Location)
		if dayIdx < 0 || dayIdx >= days || hour >= hours {
			metricRecordsDroppedTotal.WithLabelValues(recordTypePerformance, reasonOutOfWindow).Inc()
			continue
		}
		// The upstream emits at most one sample per (tier, hour) cell, so the
		// last sample wins rather than accumulating.
		grid[tier][dayIdx][hour] = decimal.NewFromFloat(r.Ratio).Round(ratioScale)
	}
	return grid, nil
}

// performanceDays clamps the reporting window so it starts no earlier than
// the metrics start date.
func (p *processor) performanceDays() int {
	available := datetimes.DaysBetween(p.cfg.StartDate, p.countLastDate) + 1
	if available < 0 {
		available = 0
	}
	return min(p.numberOfDays, available)
}

func (p *processor) validatePerformanceRange(records []models.PerformanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	minTs, maxTs := records[0].TimestampMillis, records[0].TimestampMillis
	for _, r := range records[1:] {
		minTs = min(minTs, r.TimestampMillis)
		maxTs = max(maxTs, r.TimestampMillis)
	}

	earliest := datetimes.DateIn(minTs, p.cfg.Location)
	if earliest.Before(datetimes.StartOfDay(p.cfg.StartDate)) {
		return errPerformanceRecordsOutsideWindow(fmt.Sprintf(
			"earliest record %s precedes start date %s",
			earliest.Format("2006-01-02"), p.cfg.StartDate.Format("2006-01-02")))
	}

	span := datetimes.DaysBetween(earliest, datetimes.DateIn(maxTs, p.cfg.Location)) + 1
	if span > p.numberOfDays {
		return errPerformanceRecordsOutsideWindow(fmt.Sprintf(
			"records span %d days, window is %d", span, p.numberOfDays))
	}
	return nil
}

func newPerformanceGrid(days, hours int) [][]decimal.Decimal {
	grid := make([][]decimal.Decimal, days)
	for d := range grid {
		row := make([]decimal.Decimal, hours)
		for h := range row {
			row[h] = decimalOne
		}
		grid[d] = row
	}
	return grid
}
