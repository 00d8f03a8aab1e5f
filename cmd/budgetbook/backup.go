package main

import (
	"context"
	"fmt"
	"os"

	"budgetbook/internal/backend"
	"budgetbook/internal/backup"
	"budgetbook/internal/i18n"
	"budgetbook/internal/report"
)

type exportCmd struct {
	To  []string `short:"t" default:"file" help:"Destinations: file, xlsx, sheets, amqp." sep:","`
	Dir string   `help:"Directory for file and xlsx exports (default BUDGETBOOK_EXPORT_DIR)."`
}

func (c *exportCmd) Run(rc *runContext) error {
	names, err := backend.ParseSinkNames(c.To)
	if err != nil {
		return err
	}
	bc, err := backend.FromAppConfig(rc.cfg, rc.app.Settings().Language)
	if err != nil {
		return err
	}
	if c.Dir != "" {
		bc.ExportDir = c.Dir
	}

	ctx, cancel := context.WithTimeout(rc.ctx, rc.cfg.ExportTimeout)
	defer cancel()

	res, err := backend.NewFactory(rc.logger.Slog()).CreateSinks(ctx, bc, names)
	if err != nil {
		return err
	}
	defer res.Cleanup()

	if err := backup.ExportAll(ctx, rc.app.Export(), res.Sinks...); err != nil {
		return err
	}
	for _, s := range res.Sinks {
		fmt.Fprintln(rc.out, rc.tr().T(i18n.ExportDone, "path", sinkTarget(s)))
	}
	return nil
}

func sinkTarget(s backup.Sink) string {
	switch s := s.(type) {
	case *backup.FileSink:
		return s.Path
	case *report.XLSXSink:
		return s.Path
	}
	return s.Name()
}

type importCmd struct {
	File string `arg:"" type:"existingfile" help:"Backup file to import."`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *importCmd) Run(rc *runContext) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	tr := rc.tr()
	err = rc.app.ImportFrom(f, func(backup.Document) bool {
		return c.Yes || rc.confirm(tr.T(i18n.ConfirmImport))
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(rc.out, tr.T(i18n.ImportDone))
	return nil
}
