package processors

import (
	"context"
	"testing"
	"time"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/providers/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProcessor_InvocationMetrics_ZeroRecordsYieldZeroFilledSeries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().InvocationRecords(gomock.Any()).Return([]models.InvocationRecord{}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	series, err := proc.InvocationMetrics(context.Background())
	require.NoError(t, err)

	require.Len(t, series, len(models.PriorityTiers()))
	for _, tier := range models.PriorityTiers() {
		assert.Equal(t, []int64{0, 0, 0, 0, 0, 0, 0}, series[tier], "tier %s", tier)
	}
}

func TestProcessor_InvocationMetrics_InRangeRecordIncrementsSingleBucket(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().InvocationRecords(gomock.Any()).Return([]models.InvocationRecord{
		{Tier: "HighPriority", Count: 5, TimestampMillis: sydneyMillis(t, 2026, 3, 7, 12, 0)},
	}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	series, err := proc.InvocationMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 0, 5, 0, 0, 0, 0}, series[models.PriorityHigh])
	for _, tier := range models.PriorityTiers() {
		if tier == models.PriorityHigh {
			continue
		}
		assert.Equal(t, []int64{0, 0, 0, 0, 0, 0, 0}, series[tier])
	}
}

func TestProcessor_InvocationMetrics_AccumulatesIntoSameBucket(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().InvocationRecords(gomock.Any()).Return([]models.InvocationRecord{
		{Tier: "LowPriority", Count: 3, TimestampMillis: sydneyMillis(t, 2026, 3, 9, 1, 0)},
		{Tier: "LowPriority", Count: 4, TimestampMillis: sydneyMillis(t, 2026, 3, 9, 23, 0)},
	}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	series, err := proc.InvocationMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), series[models.PriorityLow][0])
}

func TestProcessor_InvocationMetrics_DropsUnknownTierAndOutOfWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().InvocationRecords(gomock.Any()).Return([]models.InvocationRecord{
		{Tier: "Batch", Count: 10, TimestampMillis: sydneyMillis(t, 2026, 3, 9, 12, 0)},
		{Tier: "HighPriority", Count: 10, TimestampMillis: sydneyMillis(t, 2026, 2, 1, 12, 0)},
		// Historic window: same-day records fall outside it.
		{Tier: "HighPriority", Count: 10, TimestampMillis: sydneyMillis(t, 2026, 3, 10, 9, 0)},
	}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	series, err := proc.InvocationMetrics(context.Background())
	require.NoError(t, err)

	for _, tier := range models.PriorityTiers() {
		assert.Equal(t, []int64{0, 0, 0, 0, 0, 0, 0}, series[tier])
	}
}

func TestProcessor_InvocationMetrics_CurrentPeriodCountsToday(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().InvocationRecords(gomock.Any()).Return([]models.InvocationRecord{
		{Tier: "Unattended", Count: 2, TimestampMillis: sydneyMillis(t, 2026, 3, 10, 0, 30)},
		{Tier: "Unattended", Count: 1, TimestampMillis: sydneyMillis(t, 2026, 3, 9, 23, 30)},
	}, nil)

	proc := newTestProcessor(t, models.PeriodCurrent, provider)
	series, err := proc.InvocationMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, series[models.PriorityUnattended])
}

func TestProcessor_RejectionMetrics_SplitsByActorPresence(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	yesterday := time.Date(2026, 3, 9, 11, 0, 0, 0, testLocation(t)).Unix()
	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().RejectionRecords(gomock.Any()).Return([]models.RejectionRecord{
		{Count: 3, TimestampSeconds: yesterday, ActorID: "customer-1"},
		{Count: 2, TimestampSeconds: yesterday, ActorID: ""},
	}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	series, err := proc.RejectionMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), series[models.AspectAuthenticated][0])
	assert.Equal(t, int64(2), series[models.AspectUnauthenticated][0])
	assert.Equal(t, int64(5), series[models.AspectAll][0])
}

func TestProcessor_ErrorAspectMetrics_GroupsByDayAndStatusCode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().ErrorAspectRecords(gomock.Any()).Return([]models.ErrorAspectRecord{
		{TimestampMillis: sydneyMillis(t, 2026, 3, 9, 9, 0), StatusCode: "500", Aspect: "authenticated", Count: 2},
		{TimestampMillis: sydneyMillis(t, 2026, 3, 9, 18, 0), StatusCode: "500", Aspect: "authenticated", Count: 1},
		{TimestampMillis: sydneyMillis(t, 2026, 3, 8, 9, 0), StatusCode: "404", Aspect: "unauthenticated", Count: 4},
		{TimestampMillis: sydneyMillis(t, 2026, 3, 9, 9, 0), StatusCode: "999", Aspect: "internal", Count: 9},
	}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	days, err := proc.ErrorAspectMetrics(context.Background())
	require.NoError(t, err)

	require.Len(t, days, 7)
	assert.Equal(t, int64(3), days[0].Authenticated["500"])
	assert.Empty(t, days[0].Authenticated["999"])
	assert.Equal(t, int64(4), days[1].Unauthenticated["404"])

	// Day list runs backwards from yesterday for historic windows.
	assert.Equal(t, 9, days[0].Date.Day())
	assert.Equal(t, 3, days[6].Date.Day())
}
