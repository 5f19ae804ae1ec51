package models

import (
	"fmt"
	"time"

	"cdr-metrics/internal/shared/datetimes"
)

// Period selects which slice of the reporting window a report covers.
//
// The day and month counts, and the two reference instants derived from
// "now", follow a fixed table:
//
//	period    days  months  count reference        availability reference
//	current   1     1       end of today           now
//	historic  7     12      end of yesterday       end of previous month
//	all       8     13      end of today           now
type Period string

const (
	PeriodCurrent  Period = "current"
	PeriodHistoric Period = "historic"
	PeriodAll      Period = "all"
)

// ParsePeriod maps a raw period string to its enum value.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodCurrent, PeriodHistoric, PeriodAll:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// NumberOfDays returns the length of the per-day series for the period.
func (p Period) NumberOfDays() int {
	switch p {
	case PeriodCurrent:
		return 1
	case PeriodHistoric:
		return 7
	default:
		return 8
	}
}

// NumberOfMonths returns the length of the per-month series for the period.
func (p Period) NumberOfMonths() int {
	switch p {
	case PeriodCurrent:
		return 1
	case PeriodHistoric:
		return 12
	default:
		return 13
	}
}

// IncludesCurrentDay reports whether day bucket 0 is today. For the historic
// period bucket 0 is yesterday and same-day records fall outside the window.
func (p Period) IncludesCurrentDay() bool {
	return p != PeriodHistoric
}

// CountLastDate returns the end-of-day reference instant used for day
// bucketing of count-style metrics.
func (p Period) CountLastDate(now time.Time) time.Time {
	if p == PeriodHistoric {
		return datetimes.EndOfDay(now.AddDate(0, 0, -1))
	}
	return datetimes.EndOfDay(now)
}

// AvailabilityLastDate returns the upper bound of the availability window.
// The historic window ends at the last instant of the previous month; the
// current and combined windows run up to now.
func (p Period) AvailabilityLastDate(now time.Time) time.Time {
	if p == PeriodHistoric {
		return datetimes.EndOfDay(datetimes.StartOfMonth(now).AddDate(0, 0, -1))
	}
	return now
}
