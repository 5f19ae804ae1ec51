package models_test

import (
	"testing"
	"time"

	"cdr-metrics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_WindowSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		period models.Period
		days   int
		months int
	}{
		{models.PeriodCurrent, 1, 1},
		{models.PeriodHistoric, 7, 12},
		{models.PeriodAll, 8, 13},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.period), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.days, tt.period.NumberOfDays())
			assert.Equal(t, tt.months, tt.period.NumberOfMonths())
		})
	}
}

func TestPeriod_ReferenceDates(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, loc)

	t.Run("current counts up to end of today", func(t *testing.T) {
		t.Parallel()
		got := models.PeriodCurrent.CountLastDate(now)
		assert.Equal(t, 10, got.Day())
		assert.Equal(t, 23, got.Hour())
		assert.Equal(t, now, models.PeriodCurrent.AvailabilityLastDate(now))
	})

	t.Run("historic counts up to end of yesterday", func(t *testing.T) {
		t.Parallel()
		got := models.PeriodHistoric.CountLastDate(now)
		assert.Equal(t, 9, got.Day())
		assert.Equal(t, 23, got.Hour())

		avail := models.PeriodHistoric.AvailabilityLastDate(now)
		assert.Equal(t, time.February, avail.Month())
		assert.Equal(t, 28, avail.Day())
	})

	t.Run("all counts up to end of today", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, models.PeriodCurrent.CountLastDate(now), models.PeriodAll.CountLastDate(now))
		assert.Equal(t, now, models.PeriodAll.AvailabilityLastDate(now))
	})
}

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	got, err := models.ParsePeriod("historic")
	require.NoError(t, err)
	assert.Equal(t, models.PeriodHistoric, got)

	_, err = models.ParsePeriod("weekly")
	assert.Error(t, err)
}

func TestPeriod_IncludesCurrentDay(t *testing.T) {
	t.Parallel()

	assert.True(t, models.PeriodCurrent.IncludesCurrentDay())
	assert.True(t, models.PeriodAll.IncludesCurrentDay())
	assert.False(t, models.PeriodHistoric.IncludesCurrentDay())
}
