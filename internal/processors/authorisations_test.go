package processors

import (
	"context"
	"testing"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/providers/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveLatestStatus_HighestTimestampWins(t *testing.T) {
	t.Parallel()

	resolved := resolveLatestStatus([]models.StatusChangeRecord{
		{ConsentID: "A", Status: models.ConsentAuthorised, TimestampMillis: 1},
		{ConsentID: "A", Status: models.ConsentRevoked, TimestampMillis: 5},
		{ConsentID: "A", Status: models.ConsentAuthorised, TimestampMillis: 3},
	})

	require.Len(t, resolved, 1)
	assert.Equal(t, models.ConsentRevoked, resolved["A"].Status)
}

func TestResolveLatestStatus_FirstEventWinsTimestampTie(t *testing.T) {
	t.Parallel()

	resolved := resolveLatestStatus([]models.StatusChangeRecord{
		{ConsentID: "B", Status: models.ConsentAuthorised, TimestampMillis: 7},
		{ConsentID: "B", Status: models.ConsentRevoked, TimestampMillis: 7},
	})

	assert.Equal(t, models.ConsentAuthorised, resolved["B"].Status)
}

func TestProcessor_ActiveAuthorisationMetrics_ExcludesRevoked(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().StatusChangeRecords(gomock.Any()).Return([]models.StatusChangeRecord{
		{ConsentID: "A", Status: models.ConsentAuthorised, CustomerProfile: "individual", TimestampMillis: 1},
		{ConsentID: "A", Status: models.ConsentRevoked, CustomerProfile: "individual", TimestampMillis: 5},
		{ConsentID: "A", Status: models.ConsentAuthorised, CustomerProfile: "individual", TimestampMillis: 3},
		{ConsentID: "B", Status: models.ConsentAuthorised, CustomerProfile: "individual", TimestampMillis: 2},
		{ConsentID: "C", Status: models.ConsentAuthorised, CustomerProfile: "non-individual", TimestampMillis: 4},
		{ConsentID: "D", Status: models.ConsentExpired, CustomerProfile: "individual", TimestampMillis: 6},
	}, nil)

	proc := newTestProcessor(t, models.PeriodCurrent, provider)
	counts, err := proc.ActiveAuthorisationMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), counts.Individual)
	assert.Equal(t, int64(1), counts.NonIndividual)
}

func TestProcessor_AuthorisationMetrics_PopulatesLifecycleBuckets(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockMetricsDataProvider(ctrl)
	provider.EXPECT().AuthorisationRecords(gomock.Any()).Return([]models.AuthorisationRecord{
		{
			TimestampMillis: sydneyMillis(t, 2026, 3, 9, 10, 0),
			Status:          models.ConsentAuthorised,
			FlowType:        models.FlowNew,
			CustomerProfile: "individual",
			DurationType:    models.DurationOngoing,
			Count:           2,
		},
		{
			TimestampMillis: sydneyMillis(t, 2026, 3, 9, 11, 0),
			Status:          models.ConsentAuthorised,
			FlowType:        models.FlowAmended,
			CustomerProfile: "non-individual",
			DurationType:    models.DurationOngoing,
			Count:           1,
		},
		{
			TimestampMillis: sydneyMillis(t, 2026, 3, 8, 9, 0),
			Status:          models.ConsentRevoked,
			CustomerProfile: "individual",
			DurationType:    models.DurationOnceOff,
			Count:           3,
		},
		{
			TimestampMillis: sydneyMillis(t, 2026, 3, 7, 9, 0),
			Status:          models.ConsentExpired,
			CustomerProfile: "individual",
			DurationType:    models.DurationOngoing,
			Count:           1,
		},
	}, nil)

	proc := newTestProcessor(t, models.PeriodHistoric, provider)
	days, err := proc.AuthorisationMetrics(context.Background())
	require.NoError(t, err)

	require.Len(t, days, 7)
	assert.Equal(t, int64(2), days[0].New.Ongoing.Individual)
	assert.Equal(t, int64(1), days[0].Amended.Ongoing.NonIndividual)
	assert.Equal(t, int64(3), days[1].Revoked.OnceOff.Individual)
	assert.Equal(t, int64(1), days[2].Expired.Ongoing.Individual)
	assert.Zero(t, days[3].New.Ongoing.Individual)
}
