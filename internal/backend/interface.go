package backend

import (
	"context"

	"budgetbook/internal/backup"
	"budgetbook/internal/kv"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// MediumResult contains the storage medium and optional cleanup function.
// Medium is nil when no durable storage could be opened; kv.New treats that
// as "unavailable" and the session runs in memory.
type MediumResult struct {
	Medium  kv.Medium
	Cleanup CleanupFunc
}

// SinksResult contains the export destinations and their cleanup.
type SinksResult struct {
	Sinks   []backup.Sink
	Cleanup CleanupFunc
}

// Factory creates storage and export backends based on configuration
type Factory interface {
	// CreateMedium opens the storage medium selected by config.
	CreateMedium(config Config) (*MediumResult, error)

	// CreateSinks builds the named export destinations.
	CreateSinks(ctx context.Context, config Config, names []SinkName) (*SinksResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	// Backend type
	Type BackendType

	// SQLite specific
	SQLiteDBPath string
	QuotaBytes   int

	// Memory backend specific
	SeedFile string

	// Export
	ExportDir string
	Locale    string

	// AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
	DeviceName   string

	// Google Sheets
	GoogleSpreadsheetID string
	GoogleSheetName     string
}

// BackendType represents the type of storage backend
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// SinkName selects an export destination.
type SinkName string

const (
	FileSink   SinkName = "file"
	XLSXSink   SinkName = "xlsx"
	SheetsSink SinkName = "sheets"
	AMQPSink   SinkName = "amqp"
)

func SinkNames() []SinkName {
	return []SinkName{FileSink, XLSXSink, SheetsSink, AMQPSink}
}

// IsValid returns true if the sink name is known
func (s SinkName) IsValid() bool {
	switch s {
	case FileSink, XLSXSink, SheetsSink, AMQPSink:
		return true
	default:
		return false
	}
}
