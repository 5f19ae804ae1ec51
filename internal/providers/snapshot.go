package providers

import "encoding/json"

// RawSnapshot mirrors the export document of the upstream stream processor:
// one section per metric family, each holding positional scalar rows, except
// TPS which arrives as a list of event envelopes. A nil section means the
// family was not part of the export.
type RawSnapshot struct {
	Invocations           *RecordSet    `json:"invocations"`
	InvocationsByAspect   *RecordSet    `json:"invocationsByAspect"`
	SuccessfulInvocations *RecordSet    `json:"successfulInvocations"`
	ResponseTimes         *RecordSet    `json:"responseTimes"`
	Performance           *RecordSet    `json:"performance"`
	SessionCounts         *RecordSet    `json:"sessionCounts"`
	Errors                *RecordSet    `json:"errors"`
	ErrorsByAspect        *RecordSet    `json:"errorsByAspect"`
	Rejections            *RecordSet    `json:"rejections"`
	TPS                   []TPSEnvelope `json:"tps"`
	Availability          *RecordSet    `json:"availability"`
	Authorisations        *RecordSet    `json:"authorisations"`
	ActiveAuthorisations  *RecordSet    `json:"activeAuthorisations"`
	AbandonedConsentFlows *RecordSet    `json:"abandonedConsentFlows"`
	CustomerCount         *RecordSet    `json:"customerCount"`
	RecipientCount        *RecordSet    `json:"recipientCount"`

	// TPSPresent distinguishes an absent tps section from an empty one.
	TPSPresent bool `json:"-"`
}

// UnmarshalSnapshot parses the export document.
func UnmarshalSnapshot(data []byte) (*RawSnapshot, error) {
	var s RawSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err == nil {
		_, s.TPSPresent = probe["tps"]
	}
	return &s, nil
}

// RecordSet is one snapshot section of positional rows.
type RecordSet struct {
	Records []Row `json:"records"`
}

// TPSEnvelope wraps one per-second transaction count event.
type TPSEnvelope struct {
	Event TPSEvent `json:"event"`
}

// TPSEvent is one aggregated transaction count for a single second.
type TPSEvent struct {
	TotalCount float64 `json:"totalCount"`
	Timestamp  float64 `json:"timestamp"`
	Aspect     string  `json:"aspect"`
}

// Row is one positional scalar row. JSON numbers decode as float64; the
// accessors below coerce them and report failure instead of panicking so a
// malformed row can be dropped.
type Row []any

func (r Row) str(i int) (string, bool) {
	if i >= len(r) {
		return "", false
	}
	s, ok := r[i].(string)
	return s, ok
}

func (r Row) int64(i int) (int64, bool) {
	if i >= len(r) {
		return 0, false
	}
	switch v := r[i].(type) {
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

func (r Row) float64(i int) (float64, bool) {
	if i >= len(r) {
		return 0, false
	}
	switch v := r[i].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
