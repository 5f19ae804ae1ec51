package reports

import (
	"context"
	"testing"
	"time"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/processors"
	"cdr-metrics/internal/providers"
	"cdr-metrics/internal/providers/mocks"
	"cdr-metrics/internal/shared/svcerrors"
	"cdr-metrics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testClock(t *testing.T) func() time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, loc)
	return func() time.Time { return now }
}

func testProcessorConfig(t *testing.T) processors.Config {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	return processors.Config{
		Location:           loc,
		StartDate:          time.Date(2024, 1, 1, 0, 0, 0, 0, loc),
		ConsentAbandonment: 5 * time.Minute,
		AuthCodeValidity:   10 * time.Minute,
	}
}

// emptyProvider stubs every metric family with an empty, present section.
func emptyProvider(t *testing.T, ctrl *gomock.Controller) *mocks.MockMetricsDataProvider {
	t.Helper()
	p := mocks.NewMockMetricsDataProvider(ctrl)
	p.EXPECT().InvocationRecords(gomock.Any()).Return([]models.InvocationRecord{}, nil).AnyTimes()
	p.EXPECT().AspectInvocationRecords(gomock.Any()).Return([]models.AspectRecord{}, nil).AnyTimes()
	p.EXPECT().SuccessfulInvocationRecords(gomock.Any()).Return([]models.CountRecord{}, nil).AnyTimes()
	p.EXPECT().ResponseTimeRecords(gomock.Any()).Return([]models.ResponseTimeRecord{}, nil).AnyTimes()
	p.EXPECT().PerformanceRecords(gomock.Any()).Return([]models.PerformanceRecord{}, nil).AnyTimes()
	p.EXPECT().SessionCountRecords(gomock.Any()).Return([]models.CountRecord{}, nil).AnyTimes()
	p.EXPECT().ErrorRecords(gomock.Any()).Return([]models.CountRecord{}, nil).AnyTimes()
	p.EXPECT().ErrorAspectRecords(gomock.Any()).Return([]models.ErrorAspectRecord{}, nil).AnyTimes()
	p.EXPECT().RejectionRecords(gomock.Any()).Return([]models.RejectionRecord{}, nil).AnyTimes()
	p.EXPECT().TPSRecords(gomock.Any()).Return([]models.TPSRecord{}, nil).AnyTimes()
	p.EXPECT().OutageRecords(gomock.Any()).Return([]models.OutageRecord{}, nil).AnyTimes()
	p.EXPECT().AuthorisationRecords(gomock.Any()).Return([]models.AuthorisationRecord{}, nil).AnyTimes()
	p.EXPECT().StatusChangeRecords(gomock.Any()).Return([]models.StatusChangeRecord{}, nil).AnyTimes()
	p.EXPECT().StageEventRecords(gomock.Any()).Return([]models.StageEventRecord{}, nil).AnyTimes()
	p.EXPECT().CustomerCounts(gomock.Any()).Return([]int64{42}, nil).AnyTimes()
	p.EXPECT().RecipientCounts(gomock.Any()).Return([]int64{3}, nil).AnyTimes()
	return p
}

func newTestService(t *testing.T, ctrl *gomock.Controller) ReportService {
	t.Helper()
	cfg := testProcessorConfig(t)
	clock := testClock(t)
	cache := stores.NewReportCache(time.Hour, cfg.Location, clock)
	return NewReportService(emptyProvider(t, ctrl), cfg, cache, clock)
}

func TestReportService_GetReport_CurrentPeriod(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, ctrl)
	report, err := service.GetReport(context.Background(), models.PeriodCurrent)
	require.NoError(t, err)

	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, models.PeriodCurrent, report.Period)
	assert.Len(t, report.SessionCounts, 1)
	assert.Len(t, report.Errors, 1)
	for _, tier := range models.PriorityTiers() {
		assert.Len(t, report.Invocations[tier], 1)
	}
	assert.Equal(t, int64(42), report.CustomerCount)
	assert.Equal(t, int64(3), report.RecipientCount)
}

func TestReportService_GetReport_AllStitchesCurrentAndHistoric(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, ctrl)
	report, err := service.GetReport(context.Background(), models.PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, models.PeriodAll, report.Period)
	assert.Len(t, report.SessionCounts, 8)
	assert.Len(t, report.ErrorDays, 8)
	assert.Len(t, report.AbandonmentDays, 8)
	for _, tier := range models.PriorityTiers() {
		assert.Len(t, report.Invocations[tier], 8)
		// One current-day row plus seven full historic rows.
		assert.Len(t, report.HourlyPerformance[tier], 8)
	}
	for _, aspect := range models.Aspects() {
		assert.Len(t, report.AverageTPS[aspect], 8)
	}
}

func TestReportService_GetReport_HistoricServedFromCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(t, ctrl)

	first, err := service.GetReport(context.Background(), models.PeriodHistoric)
	require.NoError(t, err)
	second, err := service.GetReport(context.Background(), models.PeriodHistoric)
	require.NoError(t, err)

	// The cached report comes back as-is, report id included.
	assert.Equal(t, first.ReportID, second.ReportID)
}

func TestReportService_GetReport_ProviderNoDataSurfacesServiceError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().InvocationRecords(gomock.Any()).
		Return(nil, providers.ErrNoData).AnyTimes()

	cfg := testProcessorConfig(t)
	clock := testClock(t)
	cache := stores.NewReportCache(time.Hour, cfg.Location, clock)
	service := NewReportService(provider, cfg, cache, clock)

	_, err := service.GetReport(context.Background(), models.PeriodCurrent)
	svcErr, ok := svcerrors.As(err)
	require.True(t, ok)
	assert.True(t, svcErr.IsNoDataError())
}
