package main

import (
	"fmt"
	"strings"

	"budgetbook/internal/core"
)

type budgetCmd struct {
	Set  budgetSetCmd  `cmd:"" help:"Replace a month's budget."`
	Show budgetShowCmd `cmd:"" help:"Show a month's budget."`
	Copy budgetCopyCmd `cmd:"" help:"Copy one month's budget to another."`
}

type budgetSetCmd struct {
	Month   string   `arg:"" help:"Month as YYYY-MM."`
	Entries []string `arg:"" optional:"" help:"CATEGORY=AMOUNT pairs; 0 removes a category."`
}

func (c *budgetSetCmd) Run(rc *runContext) error {
	month, err := core.ParseMonthKey(c.Month)
	if err != nil {
		return err
	}
	entries := make([]core.BudgetEntry, 0, len(c.Entries))
	for _, raw := range c.Entries {
		cat, amount, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid budget entry %q: expected CATEGORY=AMOUNT", raw)
		}
		cents, err := core.ParseBudgetAmount(amount)
		if err != nil {
			return fmt.Errorf("budget entry %q: %w", raw, err)
		}
		entries = append(entries, core.BudgetEntry{CategoryID: strings.TrimSpace(cat), Amount: core.Cents(cents)})
	}
	return rc.app.SetBudget(month, entries)
}

type budgetShowCmd struct {
	Month string `arg:"" optional:"" help:"Month as YYYY-MM (default current)."`
}

func (c *budgetShowCmd) Run(rc *runContext) error {
	month, err := monthOrCurrent(rc, c.Month)
	if err != nil {
		return err
	}
	d := rc.app.Dashboard(month)
	fmt.Fprintf(rc.out, "%s\n", month)
	printSpending(rc, d.Spending)
	return nil
}

type budgetCopyCmd struct {
	From string `arg:"" optional:"" help:"Source month (default the month before the target)."`
	To   string `arg:"" optional:"" help:"Target month (default current)."`
}

func (c *budgetCopyCmd) Run(rc *runContext) error {
	to, err := monthOrCurrent(rc, c.To)
	if err != nil {
		return err
	}
	from := to.Prev()
	if c.From != "" {
		if from, err = core.ParseMonthKey(c.From); err != nil {
			return err
		}
	}
	return rc.app.CopyBudget(from, to)
}
