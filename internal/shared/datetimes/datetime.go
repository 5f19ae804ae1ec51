// Package datetimes holds the time conventions used by the metrics
// processors: truncated day differences against an end-of-day reference,
// the historic day-bucket indexing rule, and calendar helpers for the
// reporting timezone.
package datetimes

import (
	"math"
	"time"
)

// SecondsInDay is the divisor used for average-TPS calculations.
const SecondsInDay = 86400

// DayDifference returns the whole-day difference between two epoch-second
// instants, truncated toward zero. A record older than the reference yields a
// positive value. The reference is expected to be an end-of-day instant in
// the reporting timezone, so every record within the reference calendar day
// maps to 0, records from the previous day map to 1, and so on.
func DayDifference(epochSecondsStart, epochSecondsEnd int64) int {
	return int((epochSecondsEnd - epochSecondsStart) / SecondsInDay)
}

// DateIn returns the calendar date (midnight) containing the epoch-millisecond
// timestamp in the given location.
func DateIn(tsMillis int64, loc *time.Location) time.Time {
	t := time.UnixMilli(tsMillis).In(loc)
	return StartOfDay(t)
}

// SameDay reports whether the epoch-millisecond timestamp falls on the given
// calendar date in the given location. Only the year/month/day of date are
// considered.
func SameDay(tsMillis int64, date time.Time, loc *time.Location) bool {
	t := time.UnixMilli(tsMillis).In(loc)
	y1, m1, d1 := t.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay returns midnight of the calendar day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the calendar day containing t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight of the first day of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the month containing t.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// DaysBetween returns the number of calendar days from a to b. Both inputs
// are normalized to midnight first; the count is rounded so daylight-saving
// shifts cannot skew it.
func DaysBetween(a, b time.Time) int {
	from := StartOfDay(a)
	to := StartOfDay(b)
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// MonthsBetween returns the number of whole months from the month containing
// a to the month containing b.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()*12 + int(b.Month())) - (a.Year()*12 + int(a.Month()))
}

// DayIndex maps an epoch-second timestamp to its day-bucket index against an
// end-of-day reference instant. A timestamp past the reference is outside the
// window (-1), never bucket 0: truncating division would otherwise alias
// records from an excluded day into the most recent bucket.
//
// The reference choice selects the convention. An end-of-today reference
// makes bucket 0 today; an end-of-yesterday reference makes bucket 0
// yesterday and maps every same-day record to -1.
func DayIndex(tsSeconds, referenceSeconds int64) int {
	if tsSeconds > referenceSeconds {
		return -1
	}
	return DayDifference(tsSeconds, referenceSeconds)
}

// HourOf returns the hour of day (0..23) of the epoch-millisecond timestamp
// in the given location.
func HourOf(tsMillis int64, loc *time.Location) int {
	return time.UnixMilli(tsMillis).In(loc).Hour()
}
