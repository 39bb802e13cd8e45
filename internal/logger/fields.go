package logger

// Standard field names for structured logging.
const (
	FieldOperation   = "operation"
	FieldInputBytes  = "input_bytes"
	FieldOutputBytes = "output_bytes"
	FieldDurationMS  = "duration_ms"
	FieldDepth       = "depth"
	FieldCount       = "count"
	FieldPath        = "path"
	FieldError       = "error"
	FieldErrorKind   = "error_kind"
)
