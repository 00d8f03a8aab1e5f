package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Storage
	Backend    string
	DBPath     string
	SeedFile   string
	QuotaBytes int

	// Locale and clock
	Timezone string
	Language string

	// Export
	ExportDir     string
	ExportTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string

	// AMQP (optional off-device snapshot)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
	DeviceName   string

	// Google Sheets (optional)
	GoogleSpreadsheetID string
	GoogleSheetName     string
}

const defaultQuota = 5 * 1024 * 1024

func Load() *Config {
	host, _ := os.Hostname()
	cfg := &Config{
		Backend:    getEnv("BUDGETBOOK_BACKEND", "sqlite"),
		DBPath:     getEnv("BUDGETBOOK_DB_PATH", "./data/budgetbook.db"),
		SeedFile:   getEnv("BUDGETBOOK_SEED_FILE", ""),
		QuotaBytes: getEnvInt("BUDGETBOOK_QUOTA_BYTES", defaultQuota),

		Timezone: getEnv("BUDGETBOOK_TZ", "Local"),
		Language: getEnv("BUDGETBOOK_LANG", "en"),

		ExportDir:     getEnv("BUDGETBOOK_EXPORT_DIR", "."),
		ExportTimeout: getEnvDuration("BUDGETBOOK_EXPORT_TIMEOUT", 30*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "budgetbook"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "budgetbook_snapshots"),
		DeviceName:   getEnv("BUDGETBOOK_DEVICE", host),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Transactions"),
	}

	return cfg
}

// Location resolves Timezone. "Local" and "" mean the machine's zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// AMQPEnabled reports whether snapshots should be published.
func (c *Config) AMQPEnabled() bool { return c.AMQPURL != "" }

// SheetsEnabled reports whether exports should also go to Google Sheets.
func (c *Config) SheetsEnabled() bool { return c.GoogleSpreadsheetID != "" }

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == "sqlite" && strings.TrimSpace(c.DBPath) == "" {
		errors = append(errors, "database path cannot be empty when using sqlite backend")
	}

	if c.QuotaBytes < 0 {
		errors = append(errors, fmt.Sprintf("invalid quota %d: must be zero (unlimited) or positive", c.QuotaBytes))
	}

	if _, err := c.Location(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid timezone '%s': %v", c.Timezone, err))
	}

	if strings.TrimSpace(c.ExportDir) == "" {
		errors = append(errors, "export directory cannot be empty")
	}
	if c.ExportTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid export timeout %v: must be at least 1 second", c.ExportTimeout))
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.GoogleSpreadsheetID != "" && c.GoogleSheetName == "" {
		errors = append(errors, "Google Sheet name is required when a spreadsheet ID is set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
