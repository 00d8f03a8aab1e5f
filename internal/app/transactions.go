package app

import (
	"fmt"
	"slices"
	"strings"

	"budgetbook/internal/core"
)

// Transactions returns a copy of every transaction in insertion order.
func (a *App) Transactions() []core.Transaction {
	return slices.Clone(a.transactions.Get())
}

func (a *App) Transaction(id string) (core.Transaction, error) {
	for _, t := range a.transactions.Get() {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Transaction{}, notFound("transaction", id)
}

// AddTransaction validates t, assigns an id when it has none and appends it.
// Nothing is stored when validation fails.
func (a *App) AddTransaction(t core.Transaction) (core.Transaction, error) {
	t = cleanTransaction(t)
	if err := a.checkTransaction(t); err != nil {
		return core.Transaction{}, err
	}
	if t.ID == "" {
		t.ID = a.newID()
	}
	for _, existing := range a.transactions.Get() {
		if existing.ID == t.ID {
			return core.Transaction{}, fmt.Errorf("transaction %q: %w", t.ID, ErrAlreadyExists)
		}
	}

	a.persist(a.transactions.Update(func(txs []core.Transaction) []core.Transaction {
		return append(slices.Clone(txs), t)
	}))
	a.changed()
	a.logger.Info("Transaction added", "id", t.ID, "kind", t.Kind, "amount", t.Amount.String(), "date", t.Date)
	return t, nil
}

// UpdateTransaction replaces the transaction with t.ID, keeping its position.
func (a *App) UpdateTransaction(t core.Transaction) error {
	t = cleanTransaction(t)
	if err := a.checkTransaction(t); err != nil {
		return err
	}
	txs := a.transactions.Get()
	i := slices.IndexFunc(txs, func(x core.Transaction) bool { return x.ID == t.ID })
	if i < 0 {
		return notFound("transaction", t.ID)
	}

	next := slices.Clone(txs)
	next[i] = t
	a.persist(a.transactions.Set(next))
	a.changed()
	a.logger.Info("Transaction updated", "id", t.ID)
	return nil
}

func (a *App) DeleteTransaction(id string) error {
	txs := a.transactions.Get()
	i := slices.IndexFunc(txs, func(x core.Transaction) bool { return x.ID == id })
	if i < 0 {
		return notFound("transaction", id)
	}
	a.persist(a.transactions.Set(slices.Delete(slices.Clone(txs), i, i+1)))
	a.changed()
	a.logger.Info("Transaction deleted", "id", id)
	return nil
}

func cleanTransaction(t core.Transaction) core.Transaction {
	t.Description = strings.TrimSpace(t.Description)
	t.CategoryID = strings.TrimSpace(t.CategoryID)
	t.EventID = strings.TrimSpace(t.EventID)
	return t
}

// checkTransaction validates the record and that its references resolve.
func (a *App) checkTransaction(t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.Kind == core.Expense && !a.hasCategory(t.CategoryID) {
		return notFound("category", t.CategoryID)
	}
	if t.EventID != "" && !a.hasEvent(t.EventID) {
		return notFound("event", t.EventID)
	}
	return nil
}
