package ledger

import (
	"sort"

	"budgetbook/internal/core"
)

// MonthBucket is one past month in the history view.
type MonthBucket struct {
	Month        core.MonthKey      `json:"month"`
	Income       core.Money         `json:"income"`
	Expenses     core.Money         `json:"expenses"`
	Transactions []core.Transaction `json:"transactions"`
}

func (b MonthBucket) Balance() core.Money { return b.Income.Sub(b.Expenses) }

// GroupByMonth buckets every transaction outside current by month. Within a
// bucket the input order is kept; buckets come back newest first, which plain
// string order on YYYY-MM gives.
func GroupByMonth(txs []core.Transaction, current core.MonthKey) []MonthBucket {
	idx := make(map[core.MonthKey]int)
	var buckets []MonthBucket
	for _, t := range txs {
		m := t.Date.Month()
		if m == current {
			continue
		}
		i, ok := idx[m]
		if !ok {
			i = len(buckets)
			idx[m] = i
			buckets = append(buckets, MonthBucket{Month: m})
		}
		b := &buckets[i]
		switch t.Kind {
		case core.Income:
			b.Income = b.Income.Add(t.Amount)
		case core.Expense:
			b.Expenses = b.Expenses.Add(t.Amount)
		}
		b.Transactions = append(b.Transactions, t)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Month > buckets[j].Month })
	return buckets
}
