package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"

	FieldDuration   = "duration"
	FieldReportID   = "report_id"
	FieldPeriod     = "period"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRecordType = "record_type"
)
