package providers

import (
	"context"
	"fmt"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/shared/loggers"
)

// Record type tags used for drop counters and no-data errors.
const (
	recordTypeInvocation       = "invocation"
	recordTypeAspectInvocation = "invocation_by_aspect"
	recordTypeSuccessful       = "successful_invocation"
	recordTypeResponseTime     = "response_time"
	recordTypePerformance      = "performance"
	recordTypeSessionCount     = "session_count"
	recordTypeError            = "error"
	recordTypeErrorAspect      = "error_by_aspect"
	recordTypeRejection        = "rejection"
	recordTypeTPS              = "tps"
	recordTypeOutage           = "outage"
	recordTypeAuthorisation    = "authorisation"
	recordTypeStatusChange     = "status_change"
	recordTypeStageEvent       = "stage_event"
	recordTypeCustomerCount    = "customer_count"
	recordTypeRecipientCount   = "recipient_count"
)

type snapshotProvider struct {
	snapshot *RawSnapshot
}

// NewSnapshotProvider returns a MetricsDataProvider backed by a parsed export
// document.
func NewSnapshotProvider(snapshot *RawSnapshot) MetricsDataProvider {
	return &snapshotProvider{snapshot: snapshot}
}

func (p *snapshotProvider) section(rs *RecordSet, recordType string) ([]Row, error) {
	if rs == nil {
		return nil, fmt.Errorf("%s records: %w", recordType, ErrNoData)
	}
	return rs.Records, nil
}

func dropRow(ctx context.Context, recordType string) {
	metricRowsDroppedTotal.WithLabelValues(recordType).Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldRecordType, recordType).
		Msg("dropping malformed snapshot row")
}

func (p *snapshotProvider) InvocationRecords(ctx context.Context) ([]models.InvocationRecord, error) {
	rows, err := p.section(p.snapshot.Invocations, recordTypeInvocation)
	if err != nil {
		return nil, err
	}
	out := make([]models.InvocationRecord, 0, len(rows))
	for _, row := range rows {
		tier, okTier := row.str(0)
		count, okCount := row.int64(1)
		ts, okTs := row.int64(2)
		if !okTier || !okCount || !okTs {
			dropRow(ctx, recordTypeInvocation)
			continue
		}
		out = append(out, models.InvocationRecord{Tier: tier, Count: count, TimestampMillis: ts})
	}
	return out, nil
}

func (p *snapshotProvider) AspectInvocationRecords(ctx context.Context) ([]models.AspectRecord, error) {
	rows, err := p.section(p.snapshot.InvocationsByAspect, recordTypeAspectInvocation)
	if err != nil {
		return nil, err
	}
	out := make([]models.AspectRecord, 0, len(rows))
	for _, row := range rows {
		aspect, okAspect := row.str(0)
		count, okCount := row.int64(1)
		ts, okTs := row.int64(2)
		if !okAspect || !okCount || !okTs {
			dropRow(ctx, recordTypeAspectInvocation)
			continue
		}
		out = append(out, models.AspectRecord{Aspect: aspect, Count: count, TimestampMillis: ts})
	}
	return out, nil
}

func (p *snapshotProvider) SuccessfulInvocationRecords(ctx context.Context) ([]models.CountRecord, error) {
	rows, err := p.section(p.snapshot.SuccessfulInvocations, recordTypeSuccessful)
	if err != nil {
		return nil, err
	}
	return p.countRecords(ctx, rows, recordTypeSuccessful), nil
}

func (p *snapshotProvider) SessionCountRecords(ctx context.Context) ([]models.CountRecord, error) {
	rows, err := p.section(p.snapshot.SessionCounts, recordTypeSessionCount)
	if err != nil {
		return nil, err
	}
	return p.countRecords(ctx, rows, recordTypeSessionCount), nil
}

func (p *snapshotProvider) ErrorRecords(ctx context.Context) ([]models.CountRecord, error) {
	rows, err := p.section(p.snapshot.Errors, recordTypeError)
	if err != nil {
		return nil, err
	}
	return p.countRecords(ctx, rows, recordTypeError), nil
}

// countRecords parses the shared [count, timestampMillis] row layout.
func (p *snapshotProvider) countRecords(ctx context.Context, rows []Row, recordType string) []models.CountRecord {
	out := make([]models.CountRecord, 0, len(rows))
	for _, row := range rows {
		count, okCount := row.int64(0)
		ts, okTs := row.int64(1)
		if !okCount || !okTs {
			dropRow(ctx, recordType)
			continue
		}
		out = append(out, models.CountRecord{Count: count, TimestampMillis: ts})
	}
	return out
}

func (p *snapshotProvider) ResponseTimeRecords(ctx context.Context) ([]models.ResponseTimeRecord, error) {
	rows, err := p.section(p.snapshot.ResponseTimes, recordTypeResponseTime)
	if err != nil {
		return nil, err
	}
	out := make([]models.ResponseTimeRecord, 0, len(rows))
	for _, row := range rows {
		tier, okTier := row.str(0)
		total, okTotal := row.float64(1)
		ts, okTs := row.int64(2)
		if !okTier || !okTotal || !okTs {
			dropRow(ctx, recordTypeResponseTime)
			continue
		}
		out = append(out, models.ResponseTimeRecord{Tier: tier, TotalSeconds: total, TimestampMillis: ts})
	}
	return out, nil
}

func (p *snapshotProvider) PerformanceRecords(ctx context.Context) ([]models.PerformanceRecord, error) {
	rows, err := p.section(p.snapshot.Performance, recordTypePerformance)
	if err != nil {
		return nil, err
	}
	out := make([]models.PerformanceRecord, 0, len(rows))
	for _, row := range rows {
		tier, okTier := row.str(0)
		ts, okTs := row.int64(1)
		ratio, okRatio := row.float64(2)
		if !okTier || !okTs || !okRatio {
			dropRow(ctx, recordTypePerformance)
			continue
		}
		out = append(out, models.PerformanceRecord{Tier: tier, TimestampMillis: ts, Ratio: ratio})
	}
	return out, nil
}

func (p *snapshotProvider) ErrorAspectRecords(ctx context.Context) ([]models.ErrorAspectRecord, error) {
	rows, err := p.section(p.snapshot.ErrorsByAspect, recordTypeErrorAspect)
	if err != nil {
		return nil, err
	}
	out := make([]models.ErrorAspectRecord, 0, len(rows))
	for _, row := range rows {
		ts, okTs := row.int64(0)
		status, okStatus := row.str(1)
		aspect, okAspect := row.str(2)
		count, okCount := row.int64(3)
		if !okTs || !okStatus || !okAspect || !okCount {
			dropRow(ctx, recordTypeErrorAspect)
			continue
		}
		out = append(out, models.ErrorAspectRecord{
			TimestampMillis: ts,
			StatusCode:      status,
			Aspect:          aspect,
			Count:           count,
		})
	}
	return out, nil
}

func (p *snapshotProvider) RejectionRecords(ctx context.Context) ([]models.RejectionRecord, error) {
	rows, err := p.section(p.snapshot.Rejections, recordTypeRejection)
	if err != nil {
		return nil, err
	}
	out := make([]models.RejectionRecord, 0, len(rows))
	for _, row := range rows {
		count, okCount := row.int64(0)
		ts, okTs := row.int64(1)
		if !okCount || !okTs {
			dropRow(ctx, recordTypeRejection)
			continue
		}
		// The actor id is absent for unauthenticated traffic.
		actor, _ := row.str(2)
		out = append(out, models.RejectionRecord{Count: count, TimestampSeconds: ts, ActorID: actor})
	}
	return out, nil
}

func (p *snapshotProvider) TPSRecords(ctx context.Context) ([]models.TPSRecord, error) {
	if !p.snapshot.TPSPresent {
		return nil, fmt.Errorf("%s records: %w", recordTypeTPS, ErrNoData)
	}
	out := make([]models.TPSRecord, 0, len(p.snapshot.TPS))
	for _, envelope := range p.snapshot.TPS {
		out = append(out, models.TPSRecord{
			TotalCount:       int64(envelope.Event.TotalCount),
			TimestampSeconds: int64(envelope.Event.Timestamp),
			Aspect:           envelope.Event.Aspect,
		})
	}
	return out, nil
}

func (p *snapshotProvider) OutageRecords(ctx context.Context) ([]models.OutageRecord, error) {
	rows, err := p.section(p.snapshot.Availability, recordTypeOutage)
	if err != nil {
		return nil, err
	}
	out := make([]models.OutageRecord, 0, len(rows))
	for _, row := range rows {
		id, okID := row.str(0)
		ts, okTs := row.int64(1)
		kind, okKind := row.str(2)
		from, okFrom := row.int64(3)
		to, okTo := row.int64(4)
		aspect, okAspect := row.str(5)
		if !okID || !okTs || !okKind || !okFrom || !okTo || !okAspect {
			dropRow(ctx, recordTypeOutage)
			continue
		}
		out = append(out, models.OutageRecord{
			OutageID:         id,
			TimestampSeconds: ts,
			Kind:             parseOutageKind(kind),
			TimeFrom:         from,
			TimeTo:           to,
			Aspect:           models.ParseAspect(aspect),
		})
	}
	return out, nil
}

// parseOutageKind treats everything that is not scheduled maintenance as an
// incident.
func parseOutageKind(s string) models.OutageKind {
	if s == string(models.OutageScheduled) {
		return models.OutageScheduled
	}
	return models.OutageIncident
}

func (p *snapshotProvider) AuthorisationRecords(ctx context.Context) ([]models.AuthorisationRecord, error) {
	rows, err := p.section(p.snapshot.Authorisations, recordTypeAuthorisation)
	if err != nil {
		return nil, err
	}
	out := make([]models.AuthorisationRecord, 0, len(rows))
	for _, row := range rows {
		ts, okTs := row.int64(0)
		status, okStatus := row.str(1)
		flow, okFlow := row.str(2)
		profile, okProfile := row.str(3)
		duration, okDuration := row.str(4)
		count, okCount := row.int64(5)
		if !okTs || !okStatus || !okFlow || !okProfile || !okDuration || !okCount {
			dropRow(ctx, recordTypeAuthorisation)
			continue
		}
		out = append(out, models.AuthorisationRecord{
			TimestampMillis: ts,
			Status:          models.ConsentStatus(status),
			FlowType:        models.AuthFlowType(flow),
			CustomerProfile: profile,
			DurationType:    models.ConsentDurationType(duration),
			Count:           count,
		})
	}
	return out, nil
}

func (p *snapshotProvider) StatusChangeRecords(ctx context.Context) ([]models.StatusChangeRecord, error) {
	rows, err := p.section(p.snapshot.ActiveAuthorisations, recordTypeStatusChange)
	if err != nil {
		return nil, err
	}
	out := make([]models.StatusChangeRecord, 0, len(rows))
	for _, row := range rows {
		id, okID := row.str(0)
		status, okStatus := row.str(1)
		profile, okProfile := row.str(2)
		ts, okTs := row.int64(4)
		if !okID || !okStatus || !okProfile || !okTs {
			dropRow(ctx, recordTypeStatusChange)
			continue
		}
		out = append(out, models.StatusChangeRecord{
			ConsentID:       id,
			Status:          models.ConsentStatus(status),
			CustomerProfile: profile,
			TimestampMillis: ts,
		})
	}
	return out, nil
}

func (p *snapshotProvider) StageEventRecords(ctx context.Context) ([]models.StageEventRecord, error) {
	rows, err := p.section(p.snapshot.AbandonedConsentFlows, recordTypeStageEvent)
	if err != nil {
		return nil, err
	}
	out := make([]models.StageEventRecord, 0, len(rows))
	for _, row := range rows {
		key, okKey := row.str(0)
		stage, okStage := row.str(1)
		ts, okTs := row.int64(2)
		parsed := models.ParseAuthorisationStage(stage)
		if !okKey || !okStage || !okTs || parsed == models.StageUnknown {
			dropRow(ctx, recordTypeStageEvent)
			continue
		}
		out = append(out, models.StageEventRecord{FlowKey: key, Stage: parsed, TimestampMillis: ts})
	}
	return out, nil
}

func (p *snapshotProvider) CustomerCounts(ctx context.Context) ([]int64, error) {
	rows, err := p.section(p.snapshot.CustomerCount, recordTypeCustomerCount)
	if err != nil {
		return nil, err
	}
	return p.tallies(ctx, rows, recordTypeCustomerCount), nil
}

func (p *snapshotProvider) RecipientCounts(ctx context.Context) ([]int64, error) {
	rows, err := p.section(p.snapshot.RecipientCount, recordTypeRecipientCount)
	if err != nil {
		return nil, err
	}
	return p.tallies(ctx, rows, recordTypeRecipientCount), nil
}

func (p *snapshotProvider) tallies(ctx context.Context, rows []Row, recordType string) []int64 {
	out := make([]int64, 0, len(rows))
	for _, row := range rows {
		count, ok := row.int64(0)
		if !ok {
			dropRow(ctx, recordType)
			continue
		}
		out = append(out, count)
	}
	return out
}
