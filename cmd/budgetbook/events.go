package main

import (
	"fmt"
	"strconv"

	"budgetbook/internal/core"
	"budgetbook/internal/i18n"
)

type eventCmd struct {
	Add  eventAddCmd  `cmd:"" help:"Create an event with its own budget."`
	Edit eventEditCmd `cmd:"" help:"Rename an event or change its budget."`
	Rm   eventRmCmd   `cmd:"" help:"Delete an event and all of its transactions."`
	List eventListCmd `cmd:"" help:"List events with their progress."`
}

type eventAddCmd struct {
	Name   string `arg:"" help:"Event name."`
	Budget string `arg:"" help:"Target amount."`
}

func (c *eventAddCmd) Run(rc *runContext) error {
	cents, err := core.ParseDecimalToCents(c.Budget)
	if err != nil {
		return err
	}
	ev, err := rc.app.AddEvent(core.Event{Name: c.Name, Budget: core.Cents(cents)})
	if err != nil {
		return err
	}
	fmt.Fprintln(rc.out, ev.ID)
	return nil
}

type eventEditCmd struct {
	ID     string `arg:"" help:"Event id."`
	Name   string `help:"New name."`
	Budget string `help:"New target amount."`
}

func (c *eventEditCmd) Run(rc *runContext) error {
	ev, err := rc.app.Event(c.ID)
	if err != nil {
		return err
	}
	if c.Name != "" {
		ev.Name = c.Name
	}
	if c.Budget != "" {
		cents, err := core.ParseDecimalToCents(c.Budget)
		if err != nil {
			return err
		}
		ev.Budget = core.Cents(cents)
	}
	return rc.app.UpdateEvent(ev)
}

type eventRmCmd struct {
	ID  string `arg:"" help:"Event id."`
	Yes bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *eventRmCmd) Run(rc *runContext) error {
	ev, err := rc.app.Event(c.ID)
	if err != nil {
		return err
	}
	if !c.Yes {
		linked := 0
		for _, s := range rc.app.EventSummaries() {
			if s.Event.ID == ev.ID {
				linked = len(s.Transactions)
			}
		}
		if !rc.confirm(rc.tr().T(i18n.ConfirmDeleteEvent, "name", ev.Name, "count", strconv.Itoa(linked))) {
			return nil
		}
	}
	_, err = rc.app.DeleteEvent(ev.ID)
	return err
}

type eventListCmd struct{}

func (c *eventListCmd) Run(rc *runContext) error {
	tr := rc.tr()
	w := newTable(rc.out)
	fmt.Fprintf(w, "\t\t%s\t%s\t%s\t%%\t\n", tr.T(i18n.LabelBudget), tr.T(i18n.LabelSpent), tr.T(i18n.LabelRemaining))
	for _, s := range rc.app.EventSummaries() {
		flag := ""
		if s.Progress.OverBudget {
			flag = tr.T(i18n.LabelOverBudget)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.0f\t%s\n",
			s.Event.ID, s.Event.Name, s.Event.Budget, s.Progress.Spent, s.Progress.Remaining, s.Progress.Percentage, flag)
	}
	return w.Flush()
}
