package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"budgetbook/internal/amqp"
	"budgetbook/internal/backup"
	"budgetbook/internal/kv/memory"
	"budgetbook/internal/report"
	gsheet "budgetbook/internal/sheets/google"
	"budgetbook/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger,
	}
}

// CreateMedium implements Factory.CreateMedium. A SQLite database that
// fails to open is not an error: the result carries no medium and the
// session continues without persistence.
func (f *DefaultFactory) CreateMedium(config Config) (*MediumResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteMedium(config), nil
	case MemoryBackend:
		return f.createMemoryMedium(config), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLiteMedium(config Config) *MediumResult {
	m, err := storage.NewSQLiteMedium(config.SQLiteDBPath, config.QuotaBytes)
	if err != nil {
		f.logger.Error("Failed to open SQLite storage, changes will not be saved",
			"db_path", config.SQLiteDBPath,
			"error", err)
		return &MediumResult{}
	}

	f.logger.Info("Initialized SQLite backend",
		"db_path", config.SQLiteDBPath,
		"quota_bytes", config.QuotaBytes)

	return &MediumResult{
		Medium:  m,
		Cleanup: m.Close,
	}
}

func (f *DefaultFactory) createMemoryMedium(config Config) *MediumResult {
	var m *memory.Medium
	if config.SeedFile != "" {
		m = memory.NewFromFile(config.SeedFile, config.QuotaBytes)
	} else {
		m = memory.New(config.QuotaBytes)
	}

	f.logger.Info("Initialized memory backend", "seed_file", config.SeedFile)

	return &MediumResult{Medium: m}
}

// CreateSinks implements Factory.CreateSinks. Every requested sink must be
// configured; a broker that cannot be reached fails the whole call so the
// user is not told an export happened when it did not.
func (f *DefaultFactory) CreateSinks(ctx context.Context, config Config, names []SinkName) (*SinksResult, error) {
	if len(names) == 0 {
		names = []SinkName{FileSink}
	}

	var (
		sinks    []backup.Sink
		cleanups []CleanupFunc
	)
	closeAll := func() error {
		var errs []error
		for _, c := range cleanups {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}

	seen := make(map[SinkName]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if err := config.validateSink(name); err != nil {
			closeAll()
			return nil, err
		}

		switch name {
		case FileSink:
			sinks = append(sinks, backup.NewFileSink(config.ExportDir))
		case XLSXSink:
			sinks = append(sinks, report.NewXLSXSink(config.ExportDir, config.Locale))
		case SheetsSink:
			s, err := gsheet.Open(ctx, config.GoogleSpreadsheetID, config.GoogleSheetName, config.Locale)
			if err != nil {
				closeAll()
				return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
			}
			sinks = append(sinks, s)
		case AMQPSink:
			p, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue, config.DeviceName)
			if err != nil {
				closeAll()
				return nil, fmt.Errorf("failed to initialize AMQP publisher: %w", err)
			}
			f.logger.Info("Initialized AMQP publisher",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
			sinks = append(sinks, p)
			cleanups = append(cleanups, p.Close)
		}
	}

	return &SinksResult{Sinks: sinks, Cleanup: closeAll}, nil
}

// ParseSinkNames validates a list of destination names.
func ParseSinkNames(raw []string) ([]SinkName, error) {
	out := make([]SinkName, 0, len(raw))
	for _, r := range raw {
		name := SinkName(r)
		if !name.IsValid() {
			return nil, fmt.Errorf("unknown export destination %q: must be one of %v", r, SinkNames())
		}
		out = append(out, name)
	}
	return out, nil
}
