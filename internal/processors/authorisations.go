package processors

import (
	"context"

	"cdr-metrics/internal/models"
	"cdr-metrics/internal/shared/datetimes"
)

// AuthorisationMetrics returns the per-day consent lifecycle counts (new,
// amended, expired, revoked), each split by duration type and customer
// profile, most recent day first.
func (p *processor) AuthorisationMetrics(ctx context.Context) ([]*models.AuthorisationMetricDay, error) {
	records, err := familyRecords("authorisation", p.provider.AuthorisationRecords)(ctx)
	if err != nil {
		return nil, err
	}

	days := p.newAuthorisationDayList()
	for _, r := range records {
		for _, day := range days {
			if !datetimes.SameDay(r.TimestampMillis, day.Date, p.cfg.Location) {
				continue
			}
			switch {
			case r.Status == models.ConsentAuthorised && r.FlowType == models.FlowAmended:
				day.Amended.Add(r.DurationType, r.CustomerProfile, r.Count)
			case r.Status == models.ConsentAuthorised:
				day.New.Add(r.DurationType, r.CustomerProfile, r.Count)
			case r.Status == models.ConsentExpired:
				day.Expired.Add(r.DurationType, r.CustomerProfile, r.Count)
			case r.Status == models.ConsentRevoked:
				day.Revoked.Add(r.DurationType, r.CustomerProfile, r.Count)
			default:
				metricRecordsDroppedTotal.WithLabelValues(recordTypeAuthorisation, reasonUnknownStatus).Inc()
			}
			break
		}
	}
	return days, nil
}

func (p *processor) newAuthorisationDayList() []*models.AuthorisationMetricDay {
	days := make([]*models.AuthorisationMetricDay, 0, p.numberOfDays)
	date := datetimes.StartOfDay(p.now)
	if !p.period.IncludesCurrentDay() {
		date = date.AddDate(0, 0, -1)
	}
	for i := 0; i < p.numberOfDays; i++ {
		days = append(days, models.NewAuthorisationMetricDay(date))
		date = date.AddDate(0, 0, -1)
	}
	return days
}

// ActiveAuthorisationMetrics resolves each consent's current status from its
// status change events and counts the ones still authorised, split by
// customer profile.
func (p *processor) ActiveAuthorisationMetrics(ctx context.Context) (models.CustomerTypeCount, error) {
	records, err := familyRecords("active authorisation", p.provider.StatusChangeRecords)(ctx)
	if err != nil {
		return models.CustomerTypeCount{}, err
	}

	var counts models.CustomerTypeCount
	for _, r := range resolveLatestStatus(records) {
		if r.Status != models.ConsentAuthorised {
			continue
		}
		counts.Add(r.CustomerProfile, 1)
	}
	return counts, nil
}

// resolveLatestStatus keeps, per consent, the status change with the highest
// timestamp. Only a strictly greater timestamp replaces the held event, so
// the first event observed wins a timestamp tie.
func resolveLatestStatus(records []models.StatusChangeRecord) map[string]models.StatusChangeRecord {
	latest := make(map[string]models.StatusChangeRecord, len(records))
	for _, r := range records {
		held, ok := latest[r.ConsentID]
		if !ok || r.TimestampMillis > held.TimestampMillis {
			latest[r.ConsentID] = r
		}
	}
	return latest
}
