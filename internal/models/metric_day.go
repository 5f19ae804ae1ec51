package models

import "time"

// ErrorMetricDay holds error counts by HTTP status code for one calendar day,
// split by aspect.
type ErrorMetricDay struct {
	Date            time.Time        `json:"date"`
	Authenticated   map[string]int64 `json:"authenticated"`
	Unauthenticated map[string]int64 `json:"unauthenticated"`
}

// NewErrorMetricDay returns an ErrorMetricDay with empty count maps.
func NewErrorMetricDay(date time.Time) *ErrorMetricDay {
	return &ErrorMetricDay{
		Date:            date,
		Authenticated:   make(map[string]int64),
		Unauthenticated: make(map[string]int64),
	}
}

// Add records count errors with the given status code under the aspect.
// AspectAll counts on both sides.
func (d *ErrorMetricDay) Add(aspect Aspect, statusCode string, count int64) {
	if aspect == AspectAuthenticated || aspect == AspectAll {
		d.Authenticated[statusCode] += count
	}
	if aspect == AspectUnauthenticated || aspect == AspectAll {
		d.Unauthenticated[statusCode] += count
	}
}

// CustomerTypeCount splits a count by customer profile.
type CustomerTypeCount struct {
	Individual    int64 `json:"individual"`
	NonIndividual int64 `json:"nonIndividual"`
}

// Add increments the side matching the raw customer-profile tag.
func (c *CustomerTypeCount) Add(profile string, count int64) {
	if IsIndividualProfile(profile) {
		c.Individual += count
	} else {
		c.NonIndividual += count
	}
}

// AuthorisationMetric splits a consent count by duration type and customer
// profile.
type AuthorisationMetric struct {
	Ongoing CustomerTypeCount `json:"ongoing"`
	OnceOff CustomerTypeCount `json:"onceOff"`
}

// Add increments the bucket matching the record's duration type and profile.
func (m *AuthorisationMetric) Add(duration ConsentDurationType, profile string, count int64) {
	if duration == DurationOnceOff {
		m.OnceOff.Add(profile, count)
		return
	}
	m.Ongoing.Add(profile, count)
}

// AuthorisationMetricDay holds consent lifecycle counts for one calendar day.
type AuthorisationMetricDay struct {
	Date    time.Time           `json:"date"`
	New     AuthorisationMetric `json:"new"`
	Amended AuthorisationMetric `json:"amended"`
	Expired AuthorisationMetric `json:"expired"`
	Revoked AuthorisationMetric `json:"revoked"`
}

// NewAuthorisationMetricDay returns a zeroed AuthorisationMetricDay.
func NewAuthorisationMetricDay(date time.Time) *AuthorisationMetricDay {
	return &AuthorisationMetricDay{Date: date}
}

// AbandonmentByStageDay holds abandoned consent flow counts for one calendar
// day, broken down by the stage the flow stalled at.
type AbandonmentByStageDay struct {
	Date                time.Time `json:"date"`
	Rejected            int64     `json:"rejected"`
	PreIdentification   int64     `json:"preIdentification"`
	PreAuthentication   int64     `json:"preAuthentication"`
	PreAccountSelection int64     `json:"preAccountSelection"`
	PreAuthorisation    int64     `json:"preAuthorisation"`
	FailedTokenExchange int64     `json:"failedTokenExchange"`
}

// NewAbandonmentByStageDay returns a zeroed AbandonmentByStageDay.
func NewAbandonmentByStageDay(date time.Time) *AbandonmentByStageDay {
	return &AbandonmentByStageDay{Date: date}
}

// Increment counts one abandoned flow at the given stage.
func (d *AbandonmentByStageDay) Increment(stage AbandonmentStage) {
	switch stage {
	case AbandonedRejected:
		d.Rejected++
	case AbandonedPreIdentification:
		d.PreIdentification++
	case AbandonedPreAuthentication:
		d.PreAuthentication++
	case AbandonedPreAccountSelection:
		d.PreAccountSelection++
	case AbandonedPreAuthorisation:
		d.PreAuthorisation++
	case AbandonedFailedTokenExchange:
		d.FailedTokenExchange++
	}
}

// Total returns the abandoned flow count across all stages.
func (d *AbandonmentByStageDay) Total() int64 {
	return d.Rejected + d.PreIdentification + d.PreAuthentication +
		d.PreAccountSelection + d.PreAuthorisation + d.FailedTokenExchange
}
