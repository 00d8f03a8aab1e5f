package app

import (
	"budgetbook/internal/cache"
	"budgetbook/internal/core"
	"budgetbook/internal/ledger"
)

// Dashboard is the main view of one month. Event transactions are left out
// of every figure.
type Dashboard struct {
	Month        core.MonthKey          `json:"month"`
	Transactions []core.Transaction     `json:"transactions"`
	Totals       ledger.Totals          `json:"totals"`
	Budget       []core.BudgetEntry     `json:"budget"`
	Spending     []ledger.CategorySpend `json:"spending"`
}

// Dashboard computes the view for month. Results are memoized per state
// revision; callers must not modify the returned slices.
func (a *App) Dashboard(month core.MonthKey) Dashboard {
	return cache.Memoize(a.dashboards, a.viewKey("dashboard/"+string(month)), func() Dashboard {
		return a.buildDashboard(month)
	})
}

func (a *App) buildDashboard(month core.MonthKey) Dashboard {
	scoped := ledger.ExcludeEventTransactions(ledger.ScopeToMonth(a.transactions.Get(), month))
	budget := a.Budget(month)
	return Dashboard{
		Month:        month,
		Transactions: ledger.SortByDate(scoped, true),
		Totals:       ledger.MonthTotals(scoped),
		Budget:       budget,
		Spending:     ledger.SpendVsBudget(a.categories.Get(), budget, ledger.OnlyKind(scoped, core.Expense)),
	}
}

// History buckets every month before the current one, newest first, with
// each bucket's transactions newest first. Event transactions are left out.
func (a *App) History() []ledger.MonthBucket {
	current := a.CurrentMonth()
	return cache.Memoize(a.histories, a.viewKey("history/"+string(current)), func() []ledger.MonthBucket {
		buckets := ledger.GroupByMonth(ledger.ExcludeEventTransactions(a.transactions.Get()), current)
		for i := range buckets {
			buckets[i].Transactions = ledger.SortByDate(buckets[i].Transactions, true)
		}
		return buckets
	})
}

// ResolveCategory is the display-time lookup: unknown ids resolve to the
// fallback category.
func (a *App) ResolveCategory(id string) core.Category {
	return ledger.ResolveCategory(a.categories.Get(), id)
}
