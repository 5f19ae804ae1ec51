package models

// Parsed record types produced by the data provider. Dimension tags that feed
// closed enums with open upstream vocabularies (priority tier, aspect) stay
// raw here; the processors parse them and drop unknowns explicitly.

// InvocationRecord is one invocation count sample tagged by priority tier.
type InvocationRecord struct {
	Tier            string
	Count           int64
	TimestampMillis int64
}

// AspectRecord is one invocation count sample tagged by aspect.
type AspectRecord struct {
	Aspect          string
	Count           int64
	TimestampMillis int64
}

// ResponseTimeRecord is one accumulated response-time sample (seconds) tagged
// by priority tier.
type ResponseTimeRecord struct {
	Tier            string
	TotalSeconds    float64
	TimestampMillis int64
}

// CountRecord is an untagged count sample. Successful invocations, session
// counts and error counts all use this shape.
type CountRecord struct {
	Count           int64
	TimestampMillis int64
}

// RejectionRecord is one throttled-request sample. ActorID is empty for
// unauthenticated traffic.
type RejectionRecord struct {
	Count            int64
	TimestampSeconds int64
	ActorID          string
}

// PerformanceRecord is one within-threshold ratio sample for a (tier, hour)
// cell of the hourly performance grid.
type PerformanceRecord struct {
	Tier            string
	TimestampMillis int64
	Ratio           float64
}

// TPSRecord is one aggregated transaction count covering a single second.
type TPSRecord struct {
	TotalCount       int64
	TimestampSeconds int64
	Aspect           string
}

// OutageKind partitions outages into scheduled maintenance and incidents.
type OutageKind string

const (
	OutageScheduled OutageKind = "scheduled"
	OutageIncident  OutageKind = "incident"
)

// OutageRecord is one recorded service outage. TimeFrom/TimeTo are epoch
// seconds; Aspect names the side of the service the outage affected.
type OutageRecord struct {
	OutageID         string
	TimestampSeconds int64
	Kind             OutageKind
	TimeFrom         int64
	TimeTo           int64
	Aspect           Aspect
}

// ErrorAspectRecord is one error count sample tagged by status code and aspect.
type ErrorAspectRecord struct {
	TimestampMillis int64
	StatusCode      string
	Aspect          string
	Count           int64
}

// AuthorisationRecord is one consent lifecycle event used for the per-day
// authorisation counts.
type AuthorisationRecord struct {
	TimestampMillis int64
	Status          ConsentStatus
	FlowType        AuthFlowType
	CustomerProfile string
	DurationType    ConsentDurationType
	Count           int64
}

// StatusChangeRecord is one consent status transition used to resolve the
// currently active authorisations.
type StatusChangeRecord struct {
	ConsentID       string
	Status          ConsentStatus
	CustomerProfile string
	TimestampMillis int64
}

// StageEventRecord is one consent-flow stage transition keyed by the flow's
// request identifier.
type StageEventRecord struct {
	FlowKey         string
	Stage           AuthorisationStage
	TimestampMillis int64
}
