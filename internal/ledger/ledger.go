// Package ledger computes the read-only views rendered from the raw
// collections. Every function is pure: inputs are never modified and results
// never alias input slices.
package ledger

import (
	"sort"
	"strings"

	"budgetbook/internal/core"
)

// Totals sums one set of transactions.
type Totals struct {
	Income   core.Money `json:"income"`
	Expenses core.Money `json:"expenses"`
	Balance  core.Money `json:"balance"`
}

// ScopeToMonth keeps transactions whose date starts with month, in order.
func ScopeToMonth(txs []core.Transaction, month core.MonthKey) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if strings.HasPrefix(string(t.Date), string(month)) {
			out = append(out, t)
		}
	}
	return out
}

// ExcludeEventTransactions keeps transactions that belong to no event. All
// regular monthly views are built from this subset.
func ExcludeEventTransactions(txs []core.Transaction) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.EventID == "" {
			out = append(out, t)
		}
	}
	return out
}

// EventTransactions keeps transactions linked to eventID.
func EventTransactions(txs []core.Transaction, eventID string) []core.Transaction {
	out := make([]core.Transaction, 0)
	for _, t := range txs {
		if eventID != "" && t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out
}

// OnlyKind keeps transactions of one kind.
func OnlyKind(txs []core.Transaction, kind core.Kind) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// MonthTotals returns income, expenses and balance. Empty input is all zeros.
func MonthTotals(txs []core.Transaction) Totals {
	var tot Totals
	for _, t := range txs {
		switch t.Kind {
		case core.Income:
			tot.Income = tot.Income.Add(t.Amount)
		case core.Expense:
			tot.Expenses = tot.Expenses.Add(t.Amount)
		}
	}
	tot.Balance = tot.Income.Sub(tot.Expenses)
	return tot
}

// SortByDate orders by date with ties kept in insertion order.
func SortByDate(txs []core.Transaction, newestFirst bool) []core.Transaction {
	out := append([]core.Transaction(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		if newestFirst {
			return out[i].Date > out[j].Date
		}
		return out[i].Date < out[j].Date
	})
	return out
}

// ResolveCategory finds id among categories. A missing id resolves to the
// fallback category, and if even that is missing, to its default shape.
func ResolveCategory(categories []core.Category, id string) core.Category {
	var fallback *core.Category
	for i := range categories {
		if categories[i].ID == id {
			return categories[i]
		}
		if categories[i].ID == core.FallbackCategoryID {
			fallback = &categories[i]
		}
	}
	if fallback != nil {
		return *fallback
	}
	return core.FallbackCategory()
}

// ActiveMonths lists every month that has a transaction or a budget,
// newest first.
func ActiveMonths(txs []core.Transaction, budgets core.Budgets) []core.MonthKey {
	seen := make(map[core.MonthKey]struct{})
	for _, t := range txs {
		seen[t.Date.Month()] = struct{}{}
	}
	for m, entries := range budgets {
		if len(entries) > 0 {
			seen[m] = struct{}{}
		}
	}
	out := make([]core.MonthKey, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}
