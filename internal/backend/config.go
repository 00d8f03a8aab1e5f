package backend

import (
	"fmt"

	"budgetbook/internal/config"
)

// FromAppConfig converts the application config to backend config
func FromAppConfig(appConfig *config.Config, locale string) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	backendType := BackendType(appConfig.Backend)
	if !backendType.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.Backend)
	}

	return Config{
		Type: backendType,

		SQLiteDBPath: appConfig.DBPath,
		QuotaBytes:   appConfig.QuotaBytes,
		SeedFile:     appConfig.SeedFile,

		ExportDir: appConfig.ExportDir,
		Locale:    locale,

		AMQPURL:      appConfig.AMQPURL,
		AMQPExchange: appConfig.AMQPExchange,
		AMQPQueue:    appConfig.AMQPQueue,
		DeviceName:   appConfig.DeviceName,

		GoogleSpreadsheetID: appConfig.GoogleSpreadsheetID,
		GoogleSheetName:     appConfig.GoogleSheetName,
	}, nil
}

// Validate validates the backend configuration
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}

	if c.Type == SQLiteBackend && c.SQLiteDBPath == "" {
		return fmt.Errorf("SQLite database path is required for sqlite backend")
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("quota must not be negative")
	}
	return nil
}

// validateSink checks that the settings a sink needs are present.
func (c Config) validateSink(name SinkName) error {
	switch name {
	case FileSink, XLSXSink:
		if c.ExportDir == "" {
			return fmt.Errorf("%s export needs an export directory", name)
		}
	case SheetsSink:
		if c.GoogleSpreadsheetID == "" {
			return fmt.Errorf("Google Spreadsheet ID is required for sheets export")
		}
	case AMQPSink:
		if c.AMQPURL == "" {
			return fmt.Errorf("AMQP URL is required for amqp export")
		}
	default:
		return fmt.Errorf("unknown export destination: %s", name)
	}
	return nil
}
