// Command budgetbook is the command line front end of the tracker. Every
// subcommand maps to one controller operation.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"budgetbook/internal/app"
	"budgetbook/internal/cli"
	"budgetbook/internal/config"
	"budgetbook/internal/i18n"
	"budgetbook/internal/log"
	"budgetbook/internal/trace"
)

// runContext is bound to every command's Run method.
type runContext struct {
	ctx    context.Context
	app    *app.App
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
	in     *bufio.Reader
}

func (rc *runContext) tr() i18n.Translator { return rc.app.Translator() }

// confirm asks a yes/no question on stdin. Anything but y/yes is a no.
func (rc *runContext) confirm(question string) bool {
	fmt.Fprintf(rc.out, "%s [y/N] ", question)
	line, _ := rc.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sì":
		return true
	}
	return false
}

var commands struct {
	EnvFile []string `name:"env-file" help:"Load environment variables from these files."`

	Add  addCmd  `cmd:"" help:"Record an income or expense."`
	Edit editCmd `cmd:"" help:"Edit a transaction."`
	Rm   rmCmd   `cmd:"" help:"Delete a transaction."`
	List listCmd `cmd:"" help:"List transactions."`

	Summary summaryCmd `cmd:"" help:"Show a month's totals and spending against budget."`
	History historyCmd `cmd:"" help:"Show past months, newest first."`

	Budget   budgetCmd   `cmd:"" help:"Manage monthly budgets."`
	Category categoryCmd `cmd:"" help:"Manage categories."`
	Event    eventCmd    `cmd:"" help:"Manage event budgets."`

	Settings settingsCmd `cmd:"" help:"Show or change preferences."`
	Export   exportCmd   `cmd:"" help:"Export a backup."`
	Import   importCmd   `cmd:"" help:"Replace all data with a backup file."`
	Remind   remindCmd   `cmd:"" help:"Show a budget reminder when one is due."`
	Mirror   mirrorCmd   `cmd:"" help:"Copy snapshots from the AMQP queue onto local sinks until stopped."`
	Serve    serveCmd    `cmd:"" help:"Serve the views and edits as a local JSON API."`

	SheetsLogin sheetsLoginCmd `cmd:"" name:"sheets-login" help:"Authorize Google Sheets export with your own account."`
}

func main() {
	os.Exit(run())
}

func run() int {
	kctx := kong.Parse(&commands,
		kong.Name("budgetbook"),
		kong.Description("Personal budget tracker."),
		kong.UsageOnError(),
	)

	cli.LoadEnvFile(commands.EnvFile...)
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger := cli.SetupLogger(cfg)

	a, cleanup, err := cli.OpenApp(cfg, logger, os.Stderr)
	if err != nil {
		logger.Error("Failed to open budget", "error", err)
		return 1
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("Failed to close storage", "error", err)
		}
	}()

	ctx, stop := cli.SignalContext()
	defer stop()

	rc := &runContext{
		ctx:    ctx,
		app:    a,
		cfg:    cfg,
		logger: logger,
		out:    os.Stdout,
		in:     bufio.NewReader(os.Stdin),
	}
	err = trace.Run(ctx, logger.Slog(), kctx.Command(), func(ctx context.Context) error {
		rc.ctx = ctx
		return kctx.Run(rc)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: "+cli.UserMessage(err, a.Settings().Language))
		return 1
	}
	return 0
}
