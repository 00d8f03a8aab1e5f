package app

import (
	"fmt"
	"slices"
	"strings"

	"budgetbook/internal/core"
	"budgetbook/internal/ledger"
)

// EventSummary is an event with its progress and its transactions, newest
// first.
type EventSummary struct {
	Event        core.Event         `json:"event"`
	Progress     ledger.Progress    `json:"progress"`
	Transactions []core.Transaction `json:"transactions"`
}

func (a *App) Events() []core.Event {
	return slices.Clone(a.events.Get())
}

func (a *App) Event(id string) (core.Event, error) {
	for _, e := range a.events.Get() {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Event{}, notFound("event", id)
}

func (a *App) hasEvent(id string) bool {
	_, err := a.Event(id)
	return err == nil
}

func (a *App) AddEvent(e core.Event) (core.Event, error) {
	e.Name = strings.TrimSpace(e.Name)
	if err := e.Validate(); err != nil {
		return core.Event{}, err
	}
	if e.ID == "" {
		e.ID = a.newID()
	}
	if a.hasEvent(e.ID) {
		return core.Event{}, fmt.Errorf("event %q: %w", e.ID, ErrAlreadyExists)
	}
	a.persist(a.events.Update(func(evs []core.Event) []core.Event {
		return append(slices.Clone(evs), e)
	}))
	a.changed()
	a.logger.Info("Event added", "id", e.ID, "name", e.Name, "budget", e.Budget.String())
	return e, nil
}

func (a *App) UpdateEvent(e core.Event) error {
	e.Name = strings.TrimSpace(e.Name)
	if err := e.Validate(); err != nil {
		return err
	}
	evs := a.events.Get()
	i := slices.IndexFunc(evs, func(x core.Event) bool { return x.ID == e.ID })
	if i < 0 {
		return notFound("event", e.ID)
	}
	next := slices.Clone(evs)
	next[i] = e
	a.persist(a.events.Set(next))
	a.changed()
	return nil
}

// DeleteEvent removes the event together with every transaction linked to
// it. Linked transactions are deleted, not unlinked. It returns how many
// transactions went with it.
func (a *App) DeleteEvent(id string) (int, error) {
	evs := a.events.Get()
	i := slices.IndexFunc(evs, func(x core.Event) bool { return x.ID == id })
	if i < 0 {
		return 0, notFound("event", id)
	}

	txs := a.transactions.Get()
	kept := slices.DeleteFunc(slices.Clone(txs), func(t core.Transaction) bool { return t.EventID == id })
	removed := len(txs) - len(kept)

	a.persist(a.transactions.Set(kept))
	a.persist(a.events.Set(slices.Delete(slices.Clone(evs), i, i+1)))
	a.changed()
	a.logger.Info("Event deleted", "id", id, "transactions_removed", removed)
	return removed, nil
}

// EventSummaries reports every event in order.
func (a *App) EventSummaries() []EventSummary {
	txs := a.transactions.Get()
	evs := a.events.Get()
	out := make([]EventSummary, 0, len(evs))
	for _, e := range evs {
		linked := ledger.EventTransactions(txs, e.ID)
		out = append(out, EventSummary{
			Event:        e,
			Progress:     ledger.EventProgress(e, linked),
			Transactions: ledger.SortByDate(linked, true),
		})
	}
	return out
}
