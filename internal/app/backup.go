package app

import (
	"fmt"
	"io"
	"slices"

	"budgetbook/internal/backup"
	"budgetbook/internal/core"
)

// Export snapshots the four collections. The document shares nothing with
// the live state.
func (a *App) Export() backup.Document {
	return backup.Document{
		Transactions: slices.Clone(a.transactions.Get()),
		Categories:   slices.Clone(a.categories.Get()),
		Budgets:      a.budgets.Get().Clone(),
		Events:       slices.Clone(a.events.Get()),
	}
}

// ImportFrom decodes a backup from r and imports it. A file that fails to
// decode leaves the state untouched.
func (a *App) ImportFrom(r io.Reader, confirm func(backup.Document) bool) error {
	doc, err := backup.Decode(r)
	if err != nil {
		return err
	}
	return a.Import(doc, confirm)
}

// Import replaces all four collections with doc once confirm agrees. A nil
// confirm counts as agreement. Either every collection is replaced or none.
func (a *App) Import(doc backup.Document, confirm func(backup.Document) bool) error {
	if doc.Transactions == nil || doc.Categories == nil || doc.Budgets == nil || doc.Events == nil {
		return fmt.Errorf("%w: incomplete document", backup.ErrInvalidFile)
	}
	if confirm != nil && !confirm(doc) {
		return ErrImportDeclined
	}

	cats := slices.Clone(doc.Categories)
	if !slices.ContainsFunc(cats, func(c core.Category) bool { return c.ID == core.FallbackCategoryID }) {
		cats = append(cats, core.FallbackCategory())
	}

	a.persist(a.transactions.Set(slices.Clone(doc.Transactions)))
	a.persist(a.categories.Set(cats))
	a.persist(a.budgets.Set(doc.Budgets.Clone()))
	a.persist(a.events.Set(slices.Clone(doc.Events)))
	a.changed()
	a.logger.Info("Backup imported",
		"transactions", len(doc.Transactions),
		"categories", len(cats),
		"months", len(doc.Budgets),
		"events", len(doc.Events))
	return nil
}
