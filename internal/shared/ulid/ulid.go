// Package ulid issues report identifiers.
package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewReportID generates a ULID string for a metrics report. IDs sort
// lexicographically by creation time.
var NewReportID = func() string {
	return ulid.Make().String()
}
