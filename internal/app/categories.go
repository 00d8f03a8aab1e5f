package app

import (
	"fmt"
	"slices"
	"strings"

	"budgetbook/internal/core"
)

func (a *App) Categories() []core.Category {
	return slices.Clone(a.categories.Get())
}

func (a *App) Category(id string) (core.Category, error) {
	for _, c := range a.categories.Get() {
		if c.ID == id {
			return c, nil
		}
	}
	return core.Category{}, notFound("category", id)
}

func (a *App) hasCategory(id string) bool {
	_, err := a.Category(id)
	return err == nil
}

func (a *App) AddCategory(c core.Category) (core.Category, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}
	if c.ID == "" {
		c.ID = a.newID()
	}
	if a.hasCategory(c.ID) {
		return core.Category{}, fmt.Errorf("category %q: %w", c.ID, ErrAlreadyExists)
	}

	a.persist(a.categories.Update(func(cats []core.Category) []core.Category {
		return append(slices.Clone(cats), c)
	}))
	a.changed()
	a.logger.Info("Category added", "id", c.ID, "name", c.Name)
	return c, nil
}

// UpdateCategory edits name, color and icon. The fallback category may be
// edited like any other.
func (a *App) UpdateCategory(c core.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return err
	}
	cats := a.categories.Get()
	i := slices.IndexFunc(cats, func(x core.Category) bool { return x.ID == c.ID })
	if i < 0 {
		return notFound("category", c.ID)
	}
	next := slices.Clone(cats)
	next[i] = c
	a.persist(a.categories.Set(next))
	a.changed()
	return nil
}

// DeleteCategory removes a category, moves its transactions to the
// fallback category and drops its budget entries in every month. It
// returns how many transactions were reassigned.
func (a *App) DeleteCategory(id string) (int, error) {
	if id == core.FallbackCategoryID {
		return 0, ErrFallbackCategory
	}
	cats := a.categories.Get()
	i := slices.IndexFunc(cats, func(x core.Category) bool { return x.ID == id })
	if i < 0 {
		return 0, notFound("category", id)
	}

	moved := 0
	txs := slices.Clone(a.transactions.Get())
	for j := range txs {
		if txs[j].CategoryID == id {
			txs[j].CategoryID = core.FallbackCategoryID
			moved++
		}
	}

	budgets := a.budgets.Get().Clone()
	for month, entries := range budgets {
		kept := slices.DeleteFunc(entries, func(e core.BudgetEntry) bool { return e.CategoryID == id })
		if len(kept) == 0 {
			delete(budgets, month)
			continue
		}
		budgets[month] = kept
	}

	a.persist(a.transactions.Set(txs))
	a.persist(a.budgets.Set(budgets))
	a.persist(a.categories.Set(slices.Delete(slices.Clone(cats), i, i+1)))
	a.changed()
	a.logger.Info("Category deleted", "id", id, "reassigned", moved)
	return moved, nil
}
