package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldMonth       = "month"
	FieldKey         = "key"
	FieldSink        = "sink"
	FieldBackend     = "backend"
	FieldTransaction = "transaction_id"
	FieldCategory    = "category_id"
	FieldEvent       = "event_id"
	FieldAmount      = "amount"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentKV      = "kv"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentBackup  = "backup"
	ComponentAMQP    = "amqp"
	ComponentSheets  = "sheets"
	ComponentReport  = "report"
)

// Operations defines standard operation names
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpList   = "list"
	OpExport = "export"
	OpImport = "import"
	OpRemind = "remind"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithMonth adds the month a view or budget refers to
func (f LogFields) WithMonth(month string) LogFields {
	f[FieldMonth] = month
	return f
}

// WithSink adds the export destination
func (f LogFields) WithSink(name string) LogFields {
	f[FieldSink] = name
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
