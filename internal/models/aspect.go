package models

// Aspect partitions traffic by whether the consumer was authenticated.
// AspectAll marks records and outages that apply to both sides.
type Aspect string

const (
	AspectAuthenticated   Aspect = "authenticated"
	AspectUnauthenticated Aspect = "unauthenticated"
	AspectAll             Aspect = "all"
	AspectUnknown         Aspect = ""
)

// Aspects returns the reportable aspects in output order.
func Aspects() []Aspect {
	return []Aspect{AspectAuthenticated, AspectUnauthenticated, AspectAll}
}

// ParseAspect maps a raw aspect tag to its enum value. Unrecognized tags map
// to AspectUnknown so callers can drop the record explicitly.
func ParseAspect(s string) Aspect {
	switch s {
	case string(AspectAuthenticated):
		return AspectAuthenticated
	case string(AspectUnauthenticated):
		return AspectUnauthenticated
	case string(AspectAll):
		return AspectAll
	default:
		return AspectUnknown
	}
}
