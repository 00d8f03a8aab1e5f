// Package cli provides the initialization shared by the budgetbook
// commands: environment, logging, configuration and opening the store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"budgetbook/internal/app"
	"budgetbook/internal/backend"
	"budgetbook/internal/backup"
	"budgetbook/internal/config"
	"budgetbook/internal/core"
	"budgetbook/internal/i18n"
	"budgetbook/internal/kv"
	"budgetbook/internal/log"
)

// SetupLogger initializes structured logging from the configuration and
// sets it as the default logger. Logs go to stderr; stdout is for results.
func SetupLogger(cfg *config.Config) *log.Logger {
	lc := log.DefaultConfig()
	lc.Component = log.ComponentCLI
	if cfg != nil {
		lc.Level = log.ParseLevel(cfg.LogLevel)
		lc.Format = cfg.LogFormat
	}
	logger := log.New(lc)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads .env files for local use. A missing file is not an
// error.
func LoadEnvFile(paths ...string) {
	_ = godotenv.Load(paths...)
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenApp opens the configured medium and builds the controller over it.
// Storage warnings are written, translated, to warnOut.
func OpenApp(cfg *config.Config, logger *log.Logger, warnOut io.Writer) (*app.App, backend.CleanupFunc, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}
	bc, err := backend.FromAppConfig(cfg, cfg.Language)
	if err != nil {
		return nil, nil, err
	}
	res, err := backend.NewFactory(logger.WithComponent(log.ComponentBackend).Slog()).CreateMedium(bc)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	store := kv.New(res.Medium,
		kv.WithLogger(logger.WithComponent(log.ComponentKV).Slog()),
		kv.WithNotifier(&WarningNotifier{Out: warnOut, Locale: cfg.Language}))

	a := app.New(store, app.Options{
		Location: loc,
		Logger:   logger.WithComponent(log.ComponentApp).Slog(),
		Language: cfg.Language,
	})

	cleanup := func() error {
		if res.Cleanup != nil {
			return res.Cleanup()
		}
		return nil
	}
	return a, cleanup, nil
}

// WarningNotifier prints storage warnings for the user in their language.
type WarningNotifier struct {
	Out    io.Writer
	Locale string
}

var _ kv.Notifier = (*WarningNotifier)(nil)

func (n *WarningNotifier) Warn(w kv.Warning, _ string, _ error) {
	var key i18n.Key
	switch w {
	case kv.WarnUnavailable:
		key = i18n.WarnStorageUnavailable
	case kv.WarnCorrupted:
		key = i18n.WarnCorruptedData
	case kv.WarnWriteFailed:
		key = i18n.WarnWriteFailed
	default:
		return
	}
	fmt.Fprintln(n.Out, "warning: "+i18n.T(n.Locale, key))
}

// UserMessage turns a controller error into the message shown to the user.
// Errors without a translation are shown as they are.
func UserMessage(err error, locale string) string {
	var missing *backup.MissingFieldError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &missing):
		return i18n.T(locale, i18n.ErrImportMissingField, "field", missing.Field)
	case errors.Is(err, backup.ErrInvalidFile):
		return i18n.T(locale, i18n.ErrInvalidImportFile)
	case errors.Is(err, core.ErrInvalidAmount):
		return i18n.T(locale, i18n.ErrInvalidAmount)
	case errors.Is(err, core.ErrEmptyDescription):
		return i18n.T(locale, i18n.ErrEmptyDescription)
	case errors.Is(err, core.ErrEmptyName):
		return i18n.T(locale, i18n.ErrEmptyName)
	case errors.Is(err, core.ErrMissingCategory):
		return i18n.T(locale, i18n.ErrMissingCategory)
	case errors.Is(err, core.ErrInvalidDate):
		return i18n.T(locale, i18n.ErrInvalidDate)
	case errors.Is(err, app.ErrFallbackCategory):
		return i18n.T(locale, i18n.ErrCannotDeleteOther)
	default:
		return err.Error()
	}
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM, so a slow
// export can be interrupted cleanly.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
