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

const (
	abandonAfter     = 5 * time.Minute
	authCodeValidity = 10 * time.Minute
)

func TestClassifyAbandonment_RejectionBeatsStalledFunnelStage(t *testing.T) {
	t.Parallel()

	now := testNow(t)
	// Account selected an hour ago (well past the threshold), but the user
	// explicitly rejected: rejection must win.
	flow := &stageTimestamps{
		started:         now.Add(-2 * time.Hour).UnixMilli(),
		accountSelected: now.Add(-time.Hour).UnixMilli(),
		consentRejected: now.Add(-30 * time.Minute).UnixMilli(),
	}

	stage, attributedAt, abandoned := classifyAbandonment(flow, now, abandonAfter, authCodeValidity)
	require.True(t, abandoned)
	assert.Equal(t, models.AbandonedRejected, stage)
	assert.Equal(t, flow.consentRejected, attributedAt)
}

func TestClassifyAbandonment_CompletedFlowIsNeverAbandoned(t *testing.T) {
	t.Parallel()

	now := testNow(t)
	flow := &stageTimestamps{
		started:         now.Add(-2 * time.Hour).UnixMilli(),
		consentRejected: now.Add(-time.Hour).UnixMilli(),
		completed:       now.Add(-30 * time.Minute).UnixMilli(),
	}

	_, _, abandoned := classifyAbandonment(flow, now, abandonAfter, authCodeValidity)
	assert.False(t, abandoned)
}

func TestClassifyAbandonment_InFlightFlowWithinThresholdNotCounted(t *testing.T) {
	t.Parallel()

	now := testNow(t)
	flow := &stageTimestamps{
		started:           now.Add(-10 * time.Minute).UnixMilli(),
		userAuthenticated: now.Add(-2 * time.Minute).UnixMilli(),
	}

	_, _, abandoned := classifyAbandonment(flow, now, abandonAfter, authCodeValidity)
	assert.False(t, abandoned)
}

func TestClassifyAbandonment_StalledFlowsMapToPreStages(t *testing.T) {
	t.Parallel()

	now := testNow(t)
	stale := now.Add(-time.Hour).UnixMilli()

	tests := []struct {
		name string
		flow *stageTimestamps
		want models.AbandonmentStage
	}{
		{"only started", &stageTimestamps{started: stale}, models.AbandonedPreIdentification},
		{"identified", &stageTimestamps{started: stale, userIdentified: stale}, models.AbandonedPreAuthentication},
		{"authenticated", &stageTimestamps{started: stale, userAuthenticated: stale}, models.AbandonedPreAccountSelection},
		{"account selected", &stageTimestamps{started: stale, accountSelected: stale}, models.AbandonedPreAuthorisation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stage, _, abandoned := classifyAbandonment(tt.flow, now, abandonAfter, authCodeValidity)
			require.True(t, abandoned)
			assert.Equal(t, tt.want, stage)
		})
	}
}

func TestClassifyAbandonment_StalledFlowAttributedWhenThresholdLapses(t *testing.T) {
	t.Parallel()

	now := testNow(t)
	authenticated := now.Add(-time.Hour).UnixMilli()
	flow := &stageTimestamps{
		started:           authenticated - time.Minute.Milliseconds(),
		userAuthenticated: authenticated,
	}

	stage, attributedAt, abandoned := classifyAbandonment(flow, now, abandonAfter, authCodeValidity)
	require.True(t, abandoned)
	assert.Equal(t, models.AbandonedPreAccountSelection, stage)
	assert.Equal(t, authenticated+abandonAfter.Milliseconds(), attributedAt)
}

func TestClassifyAbandonment_ApprovedConsentWithLapsedCode(t *testing.T) {
	t.Parallel()

	now := testNow(t)

	lapsed := &stageTimestamps{
		started:         now.Add(-time.Hour).UnixMilli(),
		consentApproved: now.Add(-30 * time.Minute).UnixMilli(),
	}
	stage, _, abandoned := classifyAbandonment(lapsed, now, abandonAfter, authCodeValidity)
	require.True(t, abandoned)
	assert.Equal(t, models.AbandonedFailedTokenExchange, stage)

	// Approval is recent: the code can still be exchanged.
	fresh := &stageTimestamps{
		started:         now.Add(-time.Hour).UnixMilli(),
		consentApproved: now.Add(-time.Minute).UnixMilli(),
	}
	_, _, abandoned = classifyAbandonment(fresh, now, abandonAfter, authCodeValidity)
	assert.False(t, abandoned)
}

func TestClassifyAbandonment_ExplicitTokenExchangeFailure(t *testing.T) {
	t.Parallel()

	now := testNow(t)
	flow := &stageTimestamps{
		started:             now.Add(-time.Hour).UnixMilli(),
		tokenExchangeFailed: now.Add(-45 * time.Minute).UnixMilli(),
	}

	stage, attributedAt, abandoned := classifyAbandonment(flow, now, abandonAfter, authCodeValidity)
	require.True(t, abandoned)
	assert.Equal(t, models.AbandonedFailedTokenExchange, stage)
	assert.Equal(t, flow.tokenExchangeFailed, attributedAt)
}

func TestFoldStageEvents_StartedKeepsEarliestOthersKeepLatest(t *testing.T) {
	t.Parallel()

	flows := foldStageEvents([]models.StageEventRecord{
		{FlowKey: "flow-1", Stage: models.StageStarted, TimestampMillis: 2000},
		{FlowKey: "flow-1", Stage: models.StageStarted, TimestampMillis: 1000},
		{FlowKey: "flow-1", Stage: models.StageAccountSelected, TimestampMillis: 3000},
		{FlowKey: "flow-1", Stage: models.StageAccountSelected, TimestampMillis: 5000},
		{FlowKey: "flow-1", Stage: models.StageAccountSelected, TimestampMillis: 4000},
		{FlowKey: "flow-2", Stage: models.StageStarted, TimestampMillis: 9000},
	})

	require.Len(t, flows, 2)
	assert.Equal(t, int64(1000), flows["flow-1"].started)
	assert.Equal(t, int64(5000), flows["flow-1"].accountSelected)
	assert.Equal(t, int64(9000), flows["flow-2"].started)
}

func TestProcessor_AbandonmentMetrics_AttributesToCalendarDay(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().StageEventRecords(gomock.Any()).Return([]models.StageEventRecord{
		// Rejected two days before the reference: lands in bucket 1.
		{FlowKey: "flow-1", Stage: models.StageStarted, TimestampMillis: sydneyMillis(t, 2026, 3, 8, 9, 0)},
		{FlowKey: "flow-1", Stage: models.StageConsentRejected, TimestampMillis: sydneyMillis(t, 2026, 3, 8, 9, 30)},
		// Stalled after authentication yesterday: bucket 0.
		{FlowKey: "flow-2", Stage: models.StageStarted, TimestampMillis: sydneyMillis(t, 2026, 3, 9, 10, 0)},
		{FlowKey: "flow-2", Stage: models.StageUserAuthenticated, TimestampMillis: sydneyMillis(t, 2026, 3, 9, 10, 5)},
		// Completed the same day: excluded.
		{FlowKey: "flow-3", Stage: models.StageStarted, TimestampMillis: sydneyMillis(t, 2026, 3, 9, 11, 0)},
		{FlowKey: "flow-3", Stage: models.StageCompleted, TimestampMillis: sydneyMillis(t, 2026, 3, 9, 11, 2)},
	}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	days, err := proc.AbandonmentMetrics(context.Background())
	require.NoError(t, err)

	require.Len(t, days, 7)
	assert.Equal(t, int64(1), days[1].Rejected)
	assert.Equal(t, int64(1), days[0].PreAccountSelection)
	assert.Equal(t, int64(1), days[0].Total())
	assert.Equal(t, int64(2), days[0].Total()+days[1].Total())
}

func TestProcessor_AbandonmentMetrics_StallCrossingMidnightCountsOnLapseDay(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Authenticated at 23:58 on March 8; the five-minute threshold lapses at
	// 00:03 on March 9, so the abandonment belongs to the 9th.
	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().StageEventRecords(gomock.Any()).Return([]models.StageEventRecord{
		{FlowKey: "flow-1", Stage: models.StageStarted, TimestampMillis: sydneyMillis(t, 2026, 3, 8, 23, 55)},
		{FlowKey: "flow-1", Stage: models.StageUserAuthenticated, TimestampMillis: sydneyMillis(t, 2026, 3, 8, 23, 58)},
	}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	days, err := proc.AbandonmentMetrics(context.Background())
	require.NoError(t, err)

	require.Len(t, days, 7)
	assert.Equal(t, int64(1), days[0].PreAccountSelection)
	assert.Equal(t, int64(0), days[1].Total())
}
