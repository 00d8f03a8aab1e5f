// Package report renders a backup snapshot as a spreadsheet workbook for
// people who want their numbers outside the app.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"budgetbook/internal/backup"
	"budgetbook/internal/i18n"
	"budgetbook/internal/ledger"
)

const (
	transactionsSheet = "Transactions"
	historySheet      = "Monthly"
	eventsSheet       = "Events"
)

// XLSXSink writes a workbook next to the JSON backups.
type XLSXSink struct {
	Dir    string
	Locale string
	Now    func() time.Time

	// Path is set after a successful Write.
	Path string
}

var _ backup.Sink = (*XLSXSink)(nil)

func NewXLSXSink(dir, locale string) *XLSXSink {
	return &XLSXSink{Dir: dir, Locale: locale, Now: time.Now}
}

func (s *XLSXSink) Name() string { return "xlsx" }

// FileName is the workbook name for an export taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("budget-report-%s.xlsx", t.Format("2006-01-02"))
}

func (s *XLSXSink) Write(ctx context.Context, doc backup.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(s.Dir, FileName(now()))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := Render(f, doc, s.Locale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	s.Path = path
	return nil
}

// Render writes the workbook to w.
func Render(w io.Writer, doc backup.Document, locale string) error {
	tr := i18n.Translator{Locale: locale}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", transactionsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []any{"Date", "Type", "Category", "Event", "Description", "Amount"}
	if err := f.SetSheetRow(transactionsSheet, "A1", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	eventNames := make(map[string]string, len(doc.Events))
	for _, ev := range doc.Events {
		eventNames[ev.ID] = ev.Name
	}
	for i, t := range ledger.SortByDate(doc.Transactions, true) {
		category := ""
		if t.CategoryID != "" {
			category = tr.CategoryName(ledger.ResolveCategory(doc.Categories, t.CategoryID).Name)
		}
		row := []any{string(t.Date), string(t.Kind), category, eventNames[t.EventID], t.Description, t.Amount.Float()}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(transactionsSheet, cell, &row); err != nil {
			return fmt.Errorf("write transaction row: %w", err)
		}
	}
	f.SetColWidth(transactionsSheet, "A", "A", 12)
	f.SetColWidth(transactionsSheet, "B", "D", 16)
	f.SetColWidth(transactionsSheet, "E", "E", 36)
	f.SetColWidth(transactionsSheet, "F", "F", 12)

	if _, err := f.NewSheet(historySheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	monthHeaders := []any{"Month", tr.T(i18n.LabelIncome), tr.T(i18n.LabelExpenses), tr.T(i18n.LabelBalance)}
	if err := f.SetSheetRow(historySheet, "A1", &monthHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, b := range ledger.GroupByMonth(ledger.ExcludeEventTransactions(doc.Transactions), "") {
		row := []any{string(b.Month), b.Income.Float(), b.Expenses.Float(), b.Balance().Float()}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return fmt.Errorf("write month row: %w", err)
		}
	}

	if _, err := f.NewSheet(eventsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	eventHeaders := []any{"Event", tr.T(i18n.LabelBudget), tr.T(i18n.LabelSpent), tr.T(i18n.LabelRemaining), "%"}
	if err := f.SetSheetRow(eventsSheet, "A1", &eventHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, ev := range doc.Events {
		p := ledger.EventProgress(ev, doc.Transactions)
		row := []any{ev.Name, ev.Budget.Float(), p.Spent.Float(), p.Remaining.Float(), p.Percentage}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(eventsSheet, cell, &row); err != nil {
			return fmt.Errorf("write event row: %w", err)
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
