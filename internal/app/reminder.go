package app

import (
	"budgetbook/internal/core"
	"budgetbook/internal/ledger"
	"budgetbook/internal/services"
)

// AlertThreshold is the share of a category budget, in percent, at which a
// reminder flags it.
const AlertThreshold = 80

// Reminder is what a due notification shows: the month's totals and the
// categories close to or over budget.
type Reminder struct {
	Month  core.MonthKey          `json:"month"`
	Totals ledger.Totals          `json:"totals"`
	Alerts []ledger.CategorySpend `json:"alerts"`
}

// CheckReminder reports whether a reminder is due under the stored
// frequency and, if so, records that it fired.
func (a *App) CheckReminder() (Reminder, bool) {
	now := a.Now()
	if !services.ReminderDue(a.frequency.Get(), a.lastReminder.Get(), now) {
		return Reminder{}, false
	}
	d := a.Dashboard(a.CurrentMonth())
	a.persist(a.lastReminder.Set(now.UTC()))
	return Reminder{
		Month:  d.Month,
		Totals: d.Totals,
		Alerts: ledger.BudgetAlerts(d.Spending, AlertThreshold),
	}, true
}
