package models

// PriorityTier classifies an invocation by its service tier.
type PriorityTier string

const (
	PriorityUnauthenticated PriorityTier = "Unauthenticated"
	PriorityHigh            PriorityTier = "HighPriority"
	PriorityLow             PriorityTier = "LowPriority"
	PriorityUnattended      PriorityTier = "Unattended"
	PriorityLargePayload    PriorityTier = "LargePayload"
	PriorityUnknown         PriorityTier = ""
)

// PriorityTiers returns all tiers in output order.
func PriorityTiers() []PriorityTier {
	return []PriorityTier{
		PriorityUnauthenticated,
		PriorityHigh,
		PriorityLow,
		PriorityUnattended,
		PriorityLargePayload,
	}
}

// ParsePriorityTier maps a raw tier tag to its enum value. Unrecognized tags
// map to PriorityUnknown so callers can drop the record explicitly.
func ParsePriorityTier(s string) PriorityTier {
	switch PriorityTier(s) {
	case PriorityUnauthenticated, PriorityHigh, PriorityLow, PriorityUnattended, PriorityLargePayload:
		return PriorityTier(s)
	default:
		return PriorityUnknown
	}
}
