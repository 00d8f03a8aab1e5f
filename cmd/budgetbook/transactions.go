package main

import (
	"fmt"

	"budgetbook/internal/core"
	"budgetbook/internal/ledger"
)

type addCmd struct {
	Kind        string `arg:"" enum:"income,expense" help:"income or expense."`
	Amount      string `arg:"" help:"Amount, e.g. 12.50."`
	Description string `arg:"" help:"What it was."`

	Category string `short:"c" help:"Category id (expenses only)."`
	Event    string `short:"e" help:"Event id; the transaction then counts only against the event."`
	Date     string `short:"d" help:"Date as YYYY-MM-DD (default today)."`
}

func (c *addCmd) Run(rc *runContext) error {
	cents, err := core.ParseDecimalToCents(c.Amount)
	if err != nil {
		return err
	}
	date := core.Date(c.Date)
	if date == "" {
		date = rc.app.Today()
	}
	t, err := rc.app.AddTransaction(core.Transaction{
		Kind:        core.Kind(c.Kind),
		Amount:      core.Cents(cents),
		Description: c.Description,
		Date:        date,
		CategoryID:  c.Category,
		EventID:     c.Event,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(rc.out, t.ID)
	return nil
}

type editCmd struct {
	ID string `arg:"" help:"Transaction id."`

	Kind        string `help:"Change kind (income or expense); switching to income clears the category."`
	Amount      string `help:"New amount."`
	Description string `help:"New description."`
	Date        string `help:"New date (YYYY-MM-DD)."`
	Category    string `help:"New category id."`
	Event       string `help:"Link to this event."`
	NoEvent     bool   `name:"no-event" help:"Unlink from its event."`
}

func (c *editCmd) Run(rc *runContext) error {
	t, err := rc.app.Transaction(c.ID)
	if err != nil {
		return err
	}
	if c.Kind != "" {
		t.Kind = core.Kind(c.Kind)
		if t.Kind == core.Income {
			t.CategoryID = ""
		}
	}
	if c.Amount != "" {
		cents, err := core.ParseDecimalToCents(c.Amount)
		if err != nil {
			return err
		}
		t.Amount = core.Cents(cents)
	}
	if c.Description != "" {
		t.Description = c.Description
	}
	if c.Date != "" {
		t.Date = core.Date(c.Date)
	}
	if c.Category != "" {
		t.CategoryID = c.Category
	}
	if c.Event != "" {
		t.EventID = c.Event
	}
	if c.NoEvent {
		t.EventID = ""
	}
	return rc.app.UpdateTransaction(t)
}

type rmCmd struct {
	ID string `arg:"" help:"Transaction id."`
}

func (c *rmCmd) Run(rc *runContext) error {
	return rc.app.DeleteTransaction(c.ID)
}

type listCmd struct {
	Month string `short:"m" help:"Month as YYYY-MM (default current)."`
	All   bool   `help:"List every transaction, events included."`
	Event string `short:"e" help:"List the transactions of one event."`
}

func (c *listCmd) Run(rc *runContext) error {
	var txs []core.Transaction
	switch {
	case c.Event != "":
		if _, err := rc.app.Event(c.Event); err != nil {
			return err
		}
		txs = ledger.EventTransactions(rc.app.Transactions(), c.Event)
	case c.All:
		txs = rc.app.Transactions()
	default:
		month, err := monthOrCurrent(rc, c.Month)
		if err != nil {
			return err
		}
		txs = rc.app.Dashboard(month).Transactions
	}
	printTransactions(rc, ledger.SortByDate(txs, true))
	return nil
}

func monthOrCurrent(rc *runContext, s string) (core.MonthKey, error) {
	if s == "" {
		return rc.app.CurrentMonth(), nil
	}
	return core.ParseMonthKey(s)
}
