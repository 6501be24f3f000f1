package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldUserID        = "user_id"
	FieldTransactionID = "transaction_id"
	FieldError         = "error"
	FieldDurationMs    = "duration_ms"
)
