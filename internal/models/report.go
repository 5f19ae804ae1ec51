package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsReport is one assembled metrics report. Day-indexed series run from
// the most recent bucket backwards; month-indexed series likewise.
type MetricsReport struct {
	ReportID    string    `json:"reportId"`
	RequestTime time.Time `json:"requestTime"`
	Period      Period    `json:"period"`

	CustomerCount  int64 `json:"customerCount"`
	RecipientCount int64 `json:"recipientCount"`

	Invocations       map[PriorityTier][]int64             `json:"invocations"`
	Performance       []decimal.Decimal                    `json:"performance"`
	HourlyPerformance map[PriorityTier][][]decimal.Decimal `json:"hourlyPerformance"`
	AverageResponse   map[PriorityTier][]decimal.Decimal   `json:"averageResponse"`
	SessionCounts     []int64                              `json:"sessionCounts"`
	AverageTPS        map[Aspect][]decimal.Decimal         `json:"averageTps"`
	PeakTPS           map[Aspect][]decimal.Decimal         `json:"peakTps"`
	Errors            []int64                              `json:"errors"`
	ErrorDays         []*ErrorMetricDay                    `json:"errorDays"`
	Rejections        map[Aspect][]int64                   `json:"rejections"`
	Availability      map[Aspect][]decimal.Decimal         `json:"availability"`

	AuthorisationDays    []*AuthorisationMetricDay `json:"authorisationDays"`
	AbandonmentDays      []*AbandonmentByStageDay  `json:"abandonmentDays"`
	ActiveAuthorisations CustomerTypeCount         `json:"activeAuthorisations"`
}

// Append extends r's series with the historic report's, producing the
// combined view: current-day buckets first, historic buckets after. Scalar
// values that describe the present moment (customer and recipient counts,
// active authorisations) keep r's values.
func (r *MetricsReport) Append(historic *MetricsReport) {
	if historic == nil {
		return
	}

	r.SessionCounts = append(r.SessionCounts, historic.SessionCounts...)
	r.Errors = append(r.Errors, historic.Errors...)
	r.Performance = append(r.Performance, historic.Performance...)
	r.ErrorDays = append(r.ErrorDays, historic.ErrorDays...)
	r.AuthorisationDays = append(r.AuthorisationDays, historic.AuthorisationDays...)
	r.AbandonmentDays = append(r.AbandonmentDays, historic.AbandonmentDays...)

	for _, tier := range PriorityTiers() {
		r.Invocations[tier] = append(r.Invocations[tier], historic.Invocations[tier]...)
		r.AverageResponse[tier] = append(r.AverageResponse[tier], historic.AverageResponse[tier]...)
		r.HourlyPerformance[tier] = append(r.HourlyPerformance[tier], historic.HourlyPerformance[tier]...)
	}
	for _, aspect := range Aspects() {
		r.AverageTPS[aspect] = append(r.AverageTPS[aspect], historic.AverageTPS[aspect]...)
		r.PeakTPS[aspect] = append(r.PeakTPS[aspect], historic.PeakTPS[aspect]...)
		r.Rejections[aspect] = append(r.Rejections[aspect], historic.Rejections[aspect]...)
		r.Availability[aspect] = append(r.Availability[aspect], historic.Availability[aspect]...)
	}
}
