package logschema

// Field keys for structured log output. Keeping them in one place lets log
// consumers match on stable names across every component.
const (
	SchemaID    = "peaks.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}
