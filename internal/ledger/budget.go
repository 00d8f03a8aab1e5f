package ledger

import (
	"sort"

	"budgetbook/internal/core"
)

// CategorySpend is one row of the spend-vs-budget view.
type CategorySpend struct {
	Category core.Category `json:"category"`
	Spent    core.Money    `json:"spent"`
	Budgeted core.Money    `json:"budgeted"`
}

// OverBudget requires a budget: spending in an unbudgeted category is never
// "over".
func (c CategorySpend) OverBudget() bool {
	return c.Budgeted.Cents > 0 && c.Spent.Cents > c.Budgeted.Cents
}

func (c CategorySpend) Remaining() core.Money {
	return c.Budgeted.Sub(c.Spent)
}

// Percentage is spent/budgeted*100 clamped to [0,100]; with no budget it is
// 100 if anything was spent and 0 otherwise.
func (c CategorySpend) Percentage() float64 {
	return percentage(c.Spent, c.Budgeted)
}

// SpendVsBudget builds one row per category, in category order. Expenses are
// matched by categoryId; pass the month's non-event expenses. Rows with no
// spending and no budget are dropped.
func SpendVsBudget(categories []core.Category, entries []core.BudgetEntry, expenses []core.Transaction) []CategorySpend {
	spent := make(map[string]int64, len(categories))
	for _, t := range expenses {
		if t.Kind != core.Expense {
			continue
		}
		spent[t.CategoryID] += t.Amount.Cents
	}
	budgeted := make(map[string]int64, len(entries))
	for _, e := range entries {
		if _, ok := budgeted[e.CategoryID]; !ok {
			budgeted[e.CategoryID] = e.Amount.Cents
		}
	}

	out := make([]CategorySpend, 0, len(categories))
	for _, c := range categories {
		row := CategorySpend{
			Category: c,
			Spent:    core.Cents(spent[c.ID]),
			Budgeted: core.Cents(budgeted[c.ID]),
		}
		if row.Spent.IsZero() && row.Budgeted.IsZero() {
			continue
		}
		out = append(out, row)
	}
	return out
}

// BudgetAlerts returns rows whose spending reached threshold percent of a
// non-zero budget, most consumed first.
func BudgetAlerts(rows []CategorySpend, threshold float64) []CategorySpend {
	out := make([]CategorySpend, 0)
	for _, r := range rows {
		if r.Budgeted.Cents > 0 && r.Percentage() >= threshold {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ratio(out[i]) > ratio(out[j])
	})
	return out
}

func ratio(r CategorySpend) float64 {
	return float64(r.Spent.Cents) / float64(r.Budgeted.Cents)
}

func percentage(spent, budget core.Money) float64 {
	if budget.Cents <= 0 {
		if spent.Cents > 0 {
			return 100
		}
		return 0
	}
	p := float64(spent.Cents) / float64(budget.Cents) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
