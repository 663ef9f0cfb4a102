package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldStudentName = "student_name"
	FieldPaymentID   = "payment_id"
	FieldAmountCents = "amount_cents"
	FieldCollection  = "collection"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStorage = "storage"
	ComponentRoster  = "roster"
	ComponentLedger  = "ledger"
	ComponentReceipt = "receipt"
	ComponentEvents  = "events"
)
