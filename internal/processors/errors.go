package processors

import (
	"fmt"

	"cdr-metrics/internal/shared/svcerrors"
)

const (
	codeNoData                    = "MET_1000"
	codeInvalidPeriod             = "MET_1001"
	codeSeriesLengthMismatch      = "MET_1002"
	codeStartDateMisconfigured    = "MET_1003"
	codePerformanceRecordsOutside = "MET_1004"
	codeInternalProviderFailed    = "MET_9000"
)

// errNoData returns an error when a snapshot section for a metric family is absent.
func errNoData(family string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNoDataError(codeNoData, fmt.Sprintf("no data for %s metrics", family), cause)
}

// errInvalidPeriod returns an error for an unrecognized reporting period.
func errInvalidPeriod(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidPeriod, "invalid reporting period", cause)
}

// errSeriesLengthMismatch returns an error when two series being divided have different lengths.
func errSeriesLengthMismatch(dividend, divisor int) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeSeriesLengthMismatch,
		fmt.Errorf("seriesLengthMismatch: dividend=%d divisor=%d", dividend, divisor))
}

// errStartDateMisconfigured returns an error when the metrics start date lies in the future.
func errStartDateMisconfigured(startDate string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeStartDateMisconfigured,
		"metrics start date is in the future", fmt.Errorf("startDate=%s", startDate))
}

// errPerformanceRecordsOutsideWindow returns an error when performance records
// precede the metrics start date or span more than the requested window.
func errPerformanceRecordsOutsideWindow(detail string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codePerformanceRecordsOutside,
		"performance records outside reporting window", fmt.Errorf("%s", detail))
}

// errInternalProviderFailed returns an error when the data provider fails for
// a reason other than missing data.
func errInternalProviderFailed(family string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalProviderFailed,
		fmt.Errorf("providerFailed: %s: %w", family, cause))
}
