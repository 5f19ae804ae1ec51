package processors

import (
	"context"
	"time"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/shared/datetimes"
)

// stageTimestamps carries the consolidated stage timestamps (epoch millis,
// zero when the stage never happened) for one consent authorisation flow.
type stageTimestamps struct {
	flowKey             string
	started             int64
	userIdentified      int64
	userAuthenticated   int64
	accountSelected     int64
	consentApproved     int64
	consentRejected     int64
	tokenExchangeFailed int64
	completed           int64
}

// apply folds one stage event in. A repeated started event keeps the earliest
// timestamp so the flow's origin is stable; every other stage keeps the
// latest, reflecting where the user most recently got to.
func (s *stageTimestamps) apply(stage models.AuthorisationStage, tsMillis int64) {
	switch stage {
	case models.StageStarted:
		if s.started == 0 || tsMillis < s.started {
			s.started = tsMillis
		}
	case models.StageUserIdentified:
		s.userIdentified = max(s.userIdentified, tsMillis)
	case models.StageUserAuthenticated:
		s.userAuthenticated = max(s.userAuthenticated, tsMillis)
	case models.StageAccountSelected:
		s.accountSelected = max(s.accountSelected, tsMillis)
	case models.StageConsentApproved:
		s.consentApproved = max(s.consentApproved, tsMillis)
	case models.StageConsentRejected:
		s.consentRejected = max(s.consentRejected, tsMillis)
	case models.StageTokenExchangeFailed:
		s.tokenExchangeFailed = max(s.tokenExchangeFailed, tsMillis)
	case models.StageCompleted:
		s.completed = max(s.completed, tsMillis)
	}
}

// foldStageEvents consolidates raw stage events into one stageTimestamps per
// flow key.
func foldStageEvents(events []models.StageEventRecord) map[string]*stageTimestamps {
	flows := make(map[string]*stageTimestamps)
	for _, e := range events {
		flow, ok := flows[e.FlowKey]
		if !ok {
			flow = &stageTimestamps{flowKey: e.FlowKey}
			flows[e.FlowKey] = flow
		}
		flow.apply(e.Stage, e.TimestampMillis)
	}
	return flows
}

// classifyAbandonment decides whether a flow counts as abandoned, at which
// stage, and which instant the abandonment is attributed to.
//
// Precedence is strict: an explicit rejection always wins, then a failed
// token exchange, then an approved consent whose authorisation code lapsed
// unexchanged. Only after those terminal outcomes is the flow treated as
// stalled mid-funnel, and then only once it has been idle longer than the
// abandonment threshold. A completed flow is never abandoned, whatever else
// its history holds.
//
// Terminal outcomes are attributed at their own instant; a stalled flow is
// attributed at the instant the threshold lapsed, not at the last stage
// event, so a stall that crosses midnight lands on the day it became
// abandoned.
func classifyAbandonment(s *stageTimestamps, now time.Time, abandonAfter, authCodeValidity time.Duration) (models.AbandonmentStage, int64, bool) {
	if s.completed != 0 {
		return "", 0, false
	}

	if s.consentRejected != 0 {
		return models.AbandonedRejected, s.consentRejected, true
	}
	if s.tokenExchangeFailed != 0 {
		return models.AbandonedFailedTokenExchange, s.tokenExchangeFailed, true
	}
	if s.consentApproved != 0 {
		expiry := time.UnixMilli(s.consentApproved).Add(authCodeValidity)
		if now.After(expiry) {
			return models.AbandonedFailedTokenExchange, expiry.UnixMilli(), true
		}
		return "", 0, false
	}

	latest, stage := s.latestFunnelStage()
	if latest == 0 {
		return "", 0, false
	}
	if now.Sub(time.UnixMilli(latest)) <= abandonAfter {
		// Still within the threshold: the user may yet continue.
		return "", 0, false
	}
	return stage, latest + abandonAfter.Milliseconds(), true
}

// latestFunnelStage returns the most advanced mid-funnel stage reached and
// the abandonment stage a stall there maps to.
func (s *stageTimestamps) latestFunnelStage() (int64, models.AbandonmentStage) {
	switch {
	case s.accountSelected != 0:
		return s.accountSelected, models.AbandonedPreAuthorisation
	case s.userAuthenticated != 0:
		return s.userAuthenticated, models.AbandonedPreAccountSelection
	case s.userIdentified != 0:
		return s.userIdentified, models.AbandonedPreAuthentication
	case s.started != 0:
		return s.started, models.AbandonedPreIdentification
	default:
		return 0, ""
	}
}

// AbandonmentMetrics returns the per-day abandoned consent flow counts broken
// down by the stage the flow stalled at, most recent day first.
func (p *processor) AbandonmentMetrics(ctx context.Context) ([]*models.AbandonmentByStageDay, error) {
	events, err := familyRecords("abandoned consent flow", p.provider.StageEventRecords)(ctx)
	if err != nil {
		return nil, err
	}

	days := p.newAbandonmentDayList()
	for _, flow := range foldStageEvents(events) {
		stage, attributedAt, abandoned := classifyAbandonment(
			flow, p.now, p.cfg.ConsentAbandonment, p.cfg.AuthCodeValidity)
		if !abandoned {
			continue
		}
		for _, day := range days {
			if datetimes.SameDay(attributedAt, day.Date, p.cfg.Location) {
				day.Increment(stage)
				break
			}
		}
	}
	return days, nil
}

func (p *processor) newAbandonmentDayList() []*models.AbandonmentByStageDay {
	days := make([]*models.AbandonmentByStageDay, 0, p.numberOfDays)
	date := datetimes.StartOfDay(p.now)
	if !p.period.IncludesCurrentDay() {
		date = date.AddDate(0, 0, -1)
	}
	for i := 0; i < p.numberOfDays; i++ {
		days = append(days, models.NewAbandonmentByStageDay(date))
		date = date.AddDate(0, 0, -1)
	}
	return days
}
