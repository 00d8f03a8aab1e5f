package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"budgetbook/internal/core"
	"budgetbook/internal/i18n"
	"budgetbook/internal/ledger"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printTransactions(rc *runContext, txs []core.Transaction) {
	if len(txs) == 0 {
		fmt.Fprintln(rc.out, rc.tr().T(i18n.LabelNoTransactions))
		return
	}
	tr := rc.tr()
	w := newTable(rc.out)
	for _, t := range txs {
		amount := t.Amount.String()
		category := ""
		if t.Kind == core.Expense {
			amount = "-" + amount
			category = tr.CategoryName(rc.app.ResolveCategory(t.CategoryID).Name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Date, amount, t.Description, category, t.EventID)
	}
	w.Flush()
}

func printTotals(rc *runContext, tot ledger.Totals) {
	tr := rc.tr()
	w := newTable(rc.out)
	fmt.Fprintf(w, "%s\t%s\n", tr.T(i18n.LabelIncome), tot.Income)
	fmt.Fprintf(w, "%s\t%s\n", tr.T(i18n.LabelExpenses), tot.Expenses)
	fmt.Fprintf(w, "%s\t%s\n", tr.T(i18n.LabelBalance), tot.Balance)
	w.Flush()
}

func printSpending(rc *runContext, rows []ledger.CategorySpend) {
	tr := rc.tr()
	w := newTable(rc.out)
	fmt.Fprintf(w, "\t%s\t%s\t%s\t%%\t\n", tr.T(i18n.LabelSpent), tr.T(i18n.LabelBudget), tr.T(i18n.LabelRemaining))
	for _, r := range rows {
		flag := ""
		if r.OverBudget() {
			flag = tr.T(i18n.LabelOverBudget)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\t%s\n",
			tr.CategoryName(r.Category.Name), r.Spent, r.Budgeted, r.Remaining(), r.Percentage(), flag)
	}
	w.Flush()
}
