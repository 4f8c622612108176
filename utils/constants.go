package utils

const (
	// Request tracing
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"

	// HTTP status messages
	ErrInternal            = "Internal server error"
	ErrNoInators           = "No inators available"
	ErrNoPureInators       = "No pure inators available"
	ErrNoCategoryInatorsFn = "No inators available for %s"
	ErrInvalidStripSpecial = "strip_special must be a boolean"
	ErrExportFailed        = "Failed to export inators"

	// Error kinds used in "Unknown <kind>: <value>" messages
	KindSeason = "season"
	KindFormat = "format"

	// Export file naming
	ExportFilePrefix   = "inators"
	ExportDateLayout   = "20060102"
	MaxSheetNameLength = 31
)
