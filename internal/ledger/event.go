package ledger

import "budgetbook/internal/core"

// Progress is an event's spending against its target.
type Progress struct {
	Spent      core.Money `json:"spent"`
	Remaining  core.Money `json:"remaining"`
	Percentage float64    `json:"percentage"`
	OverBudget bool       `json:"overBudget"`
}

// EventProgress sums the transactions linked to ev. txs may be the whole
// collection; only matching eventId counts. A zero budget never divides.
func EventProgress(ev core.Event, txs []core.Transaction) Progress {
	var spent core.Money
	for _, t := range txs {
		if t.EventID == ev.ID && ev.ID != "" {
			spent = spent.Add(t.Amount)
		}
	}
	return Progress{
		Spent:      spent,
		Remaining:  ev.Budget.Sub(spent),
		Percentage: percentage(spent, ev.Budget),
		OverBudget: spent.Cents > ev.Budget.Cents,
	}
}
