package main

import (
	"fmt"
	"strconv"

	"budgetbook/internal/i18n"
)

type summaryCmd struct {
	Month string `arg:"" optional:"" help:"Month as YYYY-MM (default current)."`
}

func (c *summaryCmd) Run(rc *runContext) error {
	month, err := monthOrCurrent(rc, c.Month)
	if err != nil {
		return err
	}
	d := rc.app.Dashboard(month)
	tr := rc.tr()

	fmt.Fprintf(rc.out, "%s\n", d.Month)
	printTotals(rc, d.Totals)
	if len(d.Spending) > 0 {
		fmt.Fprintln(rc.out)
		printSpending(rc, d.Spending)
	}
	if len(d.Transactions) == 0 {
		fmt.Fprintln(rc.out, tr.T(i18n.LabelNoTransactions))
	}
	return nil
}

type historyCmd struct{}

func (c *historyCmd) Run(rc *runContext) error {
	buckets := rc.app.History()
	if len(buckets) == 0 {
		fmt.Fprintln(rc.out, rc.tr().T(i18n.LabelNoTransactions))
		return nil
	}
	tr := rc.tr()
	w := newTable(rc.out)
	fmt.Fprintf(w, "\t%s\t%s\t%s\t#\n", tr.T(i18n.LabelIncome), tr.T(i18n.LabelExpenses), tr.T(i18n.LabelBalance))
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", b.Month, b.Income, b.Expenses, b.Balance(), len(b.Transactions))
	}
	return w.Flush()
}

type remindCmd struct{}

func (c *remindCmd) Run(rc *runContext) error {
	r, due := rc.app.CheckReminder()
	if !due {
		return nil
	}
	tr := rc.tr()
	fmt.Fprintf(rc.out, "%s\n", r.Month)
	printTotals(rc, r.Totals)
	if len(r.Alerts) == 0 {
		fmt.Fprintln(rc.out, tr.T(i18n.ReminderAllOnTrack))
		return nil
	}
	for _, a := range r.Alerts {
		fmt.Fprintln(rc.out, tr.T(i18n.ReminderBudgetAlert,
			"category", tr.CategoryName(a.Category.Name),
			"percent", strconv.Itoa(int(a.Percentage()))))
	}
	return nil
}
