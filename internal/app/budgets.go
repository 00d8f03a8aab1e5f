package app

import (
	"fmt"
	"slices"

	"budgetbook/internal/core"
)

// Budgets returns a deep copy of every month's plan.
func (a *App) Budgets() core.Budgets {
	return a.budgets.Get().Clone()
}

// Budget returns the entries planned for month, possibly none.
func (a *App) Budget(month core.MonthKey) []core.BudgetEntry {
	return slices.Clone(a.budgets.Get()[month])
}

// SetBudget replaces month's plan. Zero entries are dropped; negative
// amounts, duplicates and unknown categories are rejected. An empty result
// removes the month.
func (a *App) SetBudget(month core.MonthKey, entries []core.BudgetEntry) error {
	if err := month.Validate(); err != nil {
		return err
	}
	normalized, err := core.NormalizeBudget(entries)
	if err != nil {
		return err
	}
	for _, e := range normalized {
		if !a.hasCategory(e.CategoryID) {
			return notFound("category", e.CategoryID)
		}
	}

	next := a.budgets.Get().Clone()
	if len(normalized) == 0 {
		delete(next, month)
	} else {
		next[month] = normalized
	}
	a.persist(a.budgets.Set(next))
	a.changed()
	a.logger.Info("Budget saved", "month", month, "entries", len(normalized))
	return nil
}

// CopyBudget carries from's plan over to to, replacing whatever to had.
// Entries for categories deleted since are skipped.
func (a *App) CopyBudget(from, to core.MonthKey) error {
	if err := from.Validate(); err != nil {
		return err
	}
	src := a.budgets.Get()[from]
	if len(src) == 0 {
		return fmt.Errorf("budget for %s: %w", from, ErrNotFound)
	}
	entries := slices.DeleteFunc(slices.Clone(src), func(e core.BudgetEntry) bool {
		return !a.hasCategory(e.CategoryID)
	})
	return a.SetBudget(to, entries)
}
