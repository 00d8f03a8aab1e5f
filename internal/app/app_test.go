package app_test

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbook/internal/app"
	"budgetbook/internal/backup"
	"budgetbook/internal/core"
	"budgetbook/internal/kv"
	"budgetbook/internal/kv/memory"
)

type harness struct {
	medium   *memory.Medium
	store    *kv.Store
	app      *app.App
	now      time.Time
	warnings []kv.Warning
}

func newHarness(t *testing.T, m *memory.Medium) *harness {
	t.Helper()
	h := &harness{medium: m, now: time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)}
	h.reload()
	return h
}

// reload opens a fresh Store and App over the same medium, like restarting
// the process.
func (h *harness) reload() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h.store = kv.New(h.medium,
		kv.WithLogger(logger),
		kv.WithNotifier(kv.NotifierFunc(func(w kv.Warning, _ string, _ error) {
			h.warnings = append(h.warnings, w)
		})))
	seq := 0
	h.app = app.New(h.store, app.Options{
		Now:      func() time.Time { return h.now },
		Location: time.UTC,
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
		Logger: logger,
	})
}

func (h *harness) raw(t *testing.T, key string) string {
	t.Helper()
	v, ok, err := h.medium.GetItem(key)
	require.NoError(t, err)
	if !ok {
		return ""
	}
	return v
}

func expense(desc string, cents int64, date core.Date, cat string) core.Transaction {
	return core.Transaction{Kind: core.Expense, Amount: core.Cents(cents), Description: desc, Date: date, CategoryID: cat}
}

func income(desc string, cents int64, date core.Date) core.Transaction {
	return core.Transaction{Kind: core.Income, Amount: core.Cents(cents), Description: desc, Date: date}
}

func TestCorruptedKeyFallsBackAlone(t *testing.T) {
	h := newHarness(t, memory.NewFromSeed(0, map[string]string{
		app.KeyTransactions: "{not json",
		app.KeyCategories:   `[{"id":"food","name":"Food","color":"#f00","icon":"x"},{"id":"other","name":"Other","color":"#000","icon":"y"}]`,
		app.KeyTheme:        `"dark"`,
		app.KeyEvents:       `[{"id":"e1","name":"Trip","budget":300}]`,
	}))

	assert.Empty(t, h.app.Transactions())
	assert.NotNil(t, h.app.Transactions())
	cats := h.app.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, "Food", cats[0].Name)
	assert.Equal(t, core.ThemeDark, h.app.Settings().Theme)
	require.Len(t, h.app.Events(), 1)
	assert.Equal(t, int64(30000), h.app.Events()[0].Budget.Cents)

	assert.Equal(t, []kv.Warning{kv.WarnCorrupted}, h.warnings)
}

func TestFallbackCategoryRestoredOnLoad(t *testing.T) {
	h := newHarness(t, memory.NewFromSeed(0, map[string]string{
		app.KeyCategories: `[{"id":"food","name":"Food","color":"","icon":""}]`,
	}))

	cats := h.app.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, core.FallbackCategoryID, cats[1].ID)
	assert.Contains(t, h.raw(t, app.KeyCategories), `"id":"other"`)
}

func TestFreshInstallUsesDefaults(t *testing.T) {
	h := newHarness(t, memory.New(0))

	assert.Equal(t, core.DefaultCategories(), h.app.Categories())
	assert.Equal(t, app.Settings{Theme: core.ThemeLight, Language: "en", NotificationFrequency: core.NotifyNever}, h.app.Settings())
	assert.Equal(t, core.MonthKey("2025-03"), h.app.CurrentMonth())
	assert.Equal(t, core.Date("2025-03-15"), h.app.Today())
	assert.Empty(t, h.warnings)
}

func TestLastWriteSurvivesReload(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	_, err := a.AddCategory(core.Category{ID: "books", Name: "Books"})
	require.NoError(t, err)
	tx, err := a.AddTransaction(expense("novel", 1250, "2025-03-02", "books"))
	require.NoError(t, err)
	tx.Amount = core.Cents(1500)
	require.NoError(t, a.UpdateTransaction(tx))
	require.NoError(t, a.SetBudget("2025-03", []core.BudgetEntry{{CategoryID: "books", Amount: core.Cents(5000)}}))
	_, err = a.AddEvent(core.Event{Name: "Trip", Budget: core.Cents(90000)})
	require.NoError(t, err)
	require.NoError(t, a.SetTheme(core.ThemeOcean))
	require.NoError(t, a.SetLanguage("it"))
	require.NoError(t, a.SetNotificationFrequency(core.NotifyWeekly))

	before := a.Export()
	settings := a.Settings()

	h.reload()
	assert.Equal(t, before, h.app.Export())
	assert.Equal(t, settings, h.app.Settings())
	got, err := h.app.Transaction(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), got.Amount.Cents)
}

func TestAddTransactionRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		tx   core.Transaction
		want error
	}{
		{"zero amount", expense("x", 0, "2025-03-01", "food"), core.ErrInvalidAmount},
		{"negative amount", expense("x", -5, "2025-03-01", "food"), core.ErrInvalidAmount},
		{"blank description", expense("   ", 100, "2025-03-01", "food"), core.ErrEmptyDescription},
		{"expense without category", expense("x", 100, "2025-03-01", ""), core.ErrMissingCategory},
		{"unknown category", expense("x", 100, "2025-03-01", "nope"), app.ErrNotFound},
		{"bad date", expense("x", 100, "2025-02-30", "food"), core.ErrInvalidDate},
		{"income with category", core.Transaction{Kind: core.Income, Amount: core.Cents(1), Description: "x", Date: "2025-03-01", CategoryID: "food"}, core.ErrUnexpectedCategory},
		{"unknown event", core.Transaction{Kind: core.Expense, Amount: core.Cents(1), Description: "x", Date: "2025-03-01", CategoryID: "food", EventID: "ghost"}, app.ErrNotFound},
		{"bad kind", core.Transaction{Kind: "gift", Amount: core.Cents(1), Description: "x", Date: "2025-03-01"}, core.ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, memory.New(0))
			_, err := h.app.AddTransaction(tt.tx)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, h.app.Transactions())
			assert.Empty(t, h.raw(t, app.KeyTransactions))
		})
	}
}

func TestTransactionCRUD(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	first, err := a.AddTransaction(income("salary", 200000, "2025-03-01"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", first.ID)
	second, err := a.AddTransaction(expense("  lunch ", 1200, "2025-03-02", "food"))
	require.NoError(t, err)
	assert.Equal(t, "lunch", second.Description)

	_, err = a.AddTransaction(core.Transaction{ID: first.ID, Kind: core.Income, Amount: core.Cents(1), Description: "dup", Date: "2025-03-01"})
	assert.ErrorIs(t, err, app.ErrAlreadyExists)

	second.Description = ""
	assert.ErrorIs(t, a.UpdateTransaction(second), core.ErrEmptyDescription)
	assert.ErrorIs(t, a.UpdateTransaction(core.Transaction{ID: "ghost", Kind: core.Income, Amount: core.Cents(1), Description: "x", Date: "2025-03-01"}), app.ErrNotFound)

	require.NoError(t, a.DeleteTransaction(first.ID))
	assert.ErrorIs(t, a.DeleteTransaction(first.ID), app.ErrNotFound)

	txs := a.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, second.ID, txs[0].ID)
	assert.Equal(t, "lunch", txs[0].Description)
}

func TestDeleteCategoryReassignsToFallback(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	_, err := a.AddCategory(core.Category{ID: "groceries", Name: "Groceries"})
	require.NoError(t, err)
	t1, err := a.AddTransaction(expense("market", 4200, "2025-03-03", "groceries"))
	require.NoError(t, err)
	t2, err := a.AddTransaction(expense("pizza", 1800, "2025-03-04", "food"))
	require.NoError(t, err)
	require.NoError(t, a.SetBudget("2025-03", []core.BudgetEntry{
		{CategoryID: "groceries", Amount: core.Cents(30000)},
		{CategoryID: "food", Amount: core.Cents(10000)},
	}))
	require.NoError(t, a.SetBudget("2025-02", []core.BudgetEntry{
		{CategoryID: "groceries", Amount: core.Cents(30000)},
	}))

	moved, err := a.DeleteCategory("groceries")
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	got, err := a.Transaction(t1.ID)
	require.NoError(t, err)
	assert.Equal(t, core.FallbackCategoryID, got.CategoryID)
	got, err = a.Transaction(t2.ID)
	require.NoError(t, err)
	assert.Equal(t, "food", got.CategoryID)

	_, err = a.Category("groceries")
	assert.ErrorIs(t, err, app.ErrNotFound)
	assert.Equal(t, []core.BudgetEntry{{CategoryID: "food", Amount: core.Cents(10000)}}, a.Budget("2025-03"))
	assert.NotContains(t, a.Budgets(), core.MonthKey("2025-02"))

	h.reload()
	got, err = h.app.Transaction(t1.ID)
	require.NoError(t, err)
	assert.Equal(t, core.FallbackCategoryID, got.CategoryID)
}

func TestFallbackCategoryCannotBeDeleted(t *testing.T) {
	h := newHarness(t, memory.New(0))

	_, err := h.app.DeleteCategory(core.FallbackCategoryID)
	assert.ErrorIs(t, err, app.ErrFallbackCategory)
	_, err = h.app.DeleteCategory("ghost")
	assert.ErrorIs(t, err, app.ErrNotFound)

	fallback, err := h.app.Category(core.FallbackCategoryID)
	require.NoError(t, err)
	fallback.Name = "Misc"
	require.NoError(t, h.app.UpdateCategory(fallback))
	assert.Equal(t, "Misc", h.app.ResolveCategory("deleted").Name)
}

func TestCategoryValidation(t *testing.T) {
	h := newHarness(t, memory.New(0))

	_, err := h.app.AddCategory(core.Category{Name: " "})
	assert.ErrorIs(t, err, core.ErrEmptyName)
	_, err = h.app.AddCategory(core.Category{ID: "food", Name: "Food again"})
	assert.ErrorIs(t, err, app.ErrAlreadyExists)

	c, err := h.app.AddCategory(core.Category{Name: "Pets"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", c.ID)
	assert.ErrorIs(t, h.app.UpdateCategory(core.Category{ID: "ghost", Name: "x"}), app.ErrNotFound)
}

func TestDeleteEventCascades(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	e1, err := a.AddEvent(core.Event{Name: "Wedding", Budget: core.Cents(500000)})
	require.NoError(t, err)
	linked := expense("venue", 300000, "2025-03-10", "entertainment")
	linked.EventID = e1.ID
	t1, err := a.AddTransaction(linked)
	require.NoError(t, err)
	t2, err := a.AddTransaction(expense("bus", 250, "2025-03-10", "transport"))
	require.NoError(t, err)

	removed, err := a.DeleteEvent(e1.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = a.Transaction(t1.ID)
	assert.ErrorIs(t, err, app.ErrNotFound)
	_, err = a.Transaction(t2.ID)
	assert.NoError(t, err)
	assert.Empty(t, a.Events())

	_, err = a.DeleteEvent(e1.ID)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestEventValidationAndSummaries(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	_, err := a.AddEvent(core.Event{Name: "Trip"})
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
	_, err = a.AddEvent(core.Event{Name: "", Budget: core.Cents(1)})
	assert.ErrorIs(t, err, core.ErrEmptyName)

	ev, err := a.AddEvent(core.Event{Name: "Trip", Budget: core.Cents(10000)})
	require.NoError(t, err)
	for _, d := range []core.Date{"2025-03-01", "2025-03-05"} {
		tx := expense("spend", 4000, d, "transport")
		tx.EventID = ev.ID
		_, err := a.AddTransaction(tx)
		require.NoError(t, err)
	}

	sums := a.EventSummaries()
	require.Len(t, sums, 1)
	assert.Equal(t, int64(8000), sums[0].Progress.Spent.Cents)
	assert.Equal(t, int64(2000), sums[0].Progress.Remaining.Cents)
	assert.Equal(t, float64(80), sums[0].Progress.Percentage)
	assert.False(t, sums[0].Progress.OverBudget)
	require.Len(t, sums[0].Transactions, 2)
	assert.Equal(t, core.Date("2025-03-05"), sums[0].Transactions[0].Date)

	ev.Budget = core.Cents(5000)
	require.NoError(t, a.UpdateEvent(ev))
	assert.True(t, a.EventSummaries()[0].Progress.OverBudget)
	assert.ErrorIs(t, a.UpdateEvent(core.Event{ID: "ghost", Name: "x", Budget: core.Cents(1)}), app.ErrNotFound)
}

func TestSetBudget(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	require.NoError(t, a.SetBudget("2025-03", []core.BudgetEntry{
		{CategoryID: "food", Amount: core.Cents(40000)},
		{CategoryID: "transport", Amount: core.Cents(0)},
		{CategoryID: "housing", Amount: core.Cents(90000)},
	}))
	assert.Equal(t, []core.BudgetEntry{
		{CategoryID: "food", Amount: core.Cents(40000)},
		{CategoryID: "housing", Amount: core.Cents(90000)},
	}, a.Budget("2025-03"))

	assert.ErrorIs(t, a.SetBudget("2025-03", []core.BudgetEntry{{CategoryID: "food", Amount: core.Cents(-1)}}), core.ErrInvalidAmount)
	assert.ErrorIs(t, a.SetBudget("2025-03", []core.BudgetEntry{
		{CategoryID: "food", Amount: core.Cents(1)},
		{CategoryID: "food", Amount: core.Cents(2)},
	}), core.ErrDuplicateCategory)
	assert.ErrorIs(t, a.SetBudget("2025-03", []core.BudgetEntry{{CategoryID: "ghost", Amount: core.Cents(1)}}), app.ErrNotFound)
	assert.ErrorIs(t, a.SetBudget("March", nil), core.ErrInvalidMonth)
	assert.Len(t, a.Budget("2025-03"), 2, "rejected saves must not change the plan")

	require.NoError(t, a.CopyBudget("2025-03", "2025-04"))
	assert.Equal(t, a.Budget("2025-03"), a.Budget("2025-04"))
	assert.ErrorIs(t, a.CopyBudget("2024-01", "2025-04"), app.ErrNotFound)

	require.NoError(t, a.SetBudget("2025-03", []core.BudgetEntry{{CategoryID: "food", Amount: core.Cents(0)}}))
	assert.NotContains(t, a.Budgets(), core.MonthKey("2025-03"))
}

func TestDashboard(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	ev, err := a.AddEvent(core.Event{Name: "Trip", Budget: core.Cents(10000)})
	require.NoError(t, err)
	_, err = a.AddTransaction(income("salary", 100000, "2025-03-01"))
	require.NoError(t, err)
	_, err = a.AddTransaction(expense("groceries", 15000, "2025-03-05", "food"))
	require.NoError(t, err)
	_, err = a.AddTransaction(expense("dinner", 10000, "2025-03-05", "food"))
	require.NoError(t, err)
	_, err = a.AddTransaction(expense("february", 999, "2025-02-27", "food"))
	require.NoError(t, err)
	trip := expense("hotel", 50000, "2025-03-07", "housing")
	trip.EventID = ev.ID
	_, err = a.AddTransaction(trip)
	require.NoError(t, err)
	require.NoError(t, a.SetBudget("2025-03", []core.BudgetEntry{
		{CategoryID: "food", Amount: core.Cents(20000)},
		{CategoryID: "utilities", Amount: core.Cents(5000)},
	}))

	d := a.Dashboard("2025-03")
	assert.Equal(t, int64(100000), d.Totals.Income.Cents)
	assert.Equal(t, int64(25000), d.Totals.Expenses.Cents)
	assert.Equal(t, int64(75000), d.Totals.Balance.Cents)

	require.Len(t, d.Transactions, 3)
	assert.Equal(t, "groceries", d.Transactions[0].Description, "ties keep insertion order")
	assert.Equal(t, "dinner", d.Transactions[1].Description)
	assert.Equal(t, "salary", d.Transactions[2].Description)

	require.Len(t, d.Spending, 2)
	assert.Equal(t, "food", d.Spending[0].Category.ID)
	assert.True(t, d.Spending[0].OverBudget())
	assert.Equal(t, "utilities", d.Spending[1].Category.ID)
	assert.False(t, d.Spending[1].OverBudget())

	// Views follow mutations.
	_, err = a.AddTransaction(expense("bill", 4000, "2025-03-08", "utilities"))
	require.NoError(t, err)
	assert.Equal(t, int64(29000), a.Dashboard("2025-03").Totals.Expenses.Cents)

	empty := a.Dashboard("2024-01")
	assert.Empty(t, empty.Transactions)
	assert.Equal(t, int64(0), empty.Totals.Balance.Cents)
}

func TestHistory(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	ev, err := a.AddEvent(core.Event{Name: "Trip", Budget: core.Cents(10000)})
	require.NoError(t, err)
	for _, tx := range []core.Transaction{
		expense("jan-a", 100, "2025-01-02", "food"),
		income("feb", 5000, "2025-02-01"),
		expense("jan-b", 200, "2025-01-20", "food"),
		expense("now", 300, "2025-03-01", "food"),
	} {
		_, err := a.AddTransaction(tx)
		require.NoError(t, err)
	}
	trip := expense("trip", 700, "2025-01-05", "food")
	trip.EventID = ev.ID
	_, err = a.AddTransaction(trip)
	require.NoError(t, err)

	hist := a.History()
	require.Len(t, hist, 2)
	assert.Equal(t, core.MonthKey("2025-02"), hist[0].Month)
	assert.Equal(t, core.MonthKey("2025-01"), hist[1].Month)
	assert.Equal(t, int64(300), hist[1].Expenses.Cents)
	require.Len(t, hist[1].Transactions, 2)
	assert.Equal(t, "jan-b", hist[1].Transactions[0].Description)

	// Moving the clock into April turns March into history.
	h.now = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.Len(t, a.History(), 3)
}

func TestImportMissingFieldLeavesStateUntouched(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app
	_, err := a.AddTransaction(expense("lunch", 1200, "2025-03-02", "food"))
	require.NoError(t, err)
	_, err = a.AddEvent(core.Event{Name: "Trip", Budget: core.Cents(1000)})
	require.NoError(t, err)
	require.NoError(t, a.SetBudget("2025-03", []core.BudgetEntry{{CategoryID: "food", Amount: core.Cents(100)}}))

	keys := []string{app.KeyTransactions, app.KeyCategories, app.KeyBudgets, app.KeyEvents}
	rawBefore := make(map[string]string)
	for _, k := range keys {
		rawBefore[k] = h.raw(t, k)
	}
	before := a.Export()

	err = a.ImportFrom(strings.NewReader(`{"transactions":[],"categories":[],"budgets":{}}`), func(backup.Document) bool {
		t.Fatal("confirmation must not be asked for an invalid file")
		return true
	})
	require.ErrorIs(t, err, backup.ErrInvalidFile)
	var missing *backup.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "events", missing.Field)

	assert.Equal(t, before, a.Export())
	for _, k := range keys {
		assert.Equal(t, rawBefore[k], h.raw(t, k), k)
	}

	assert.ErrorIs(t, a.ImportFrom(strings.NewReader(`not json`), nil), backup.ErrInvalidFile)
	assert.Equal(t, before, a.Export())
}

func TestImportDeclined(t *testing.T) {
	h := newHarness(t, memory.New(0))
	_, err := h.app.AddTransaction(income("salary", 1000, "2025-03-01"))
	require.NoError(t, err)
	before := h.app.Export()

	err = h.app.Import(backup.Document{
		Transactions: []core.Transaction{},
		Categories:   []core.Category{},
		Budgets:      core.Budgets{},
		Events:       []core.Event{},
	}, func(backup.Document) bool { return false })
	assert.ErrorIs(t, err, app.ErrImportDeclined)
	assert.Equal(t, before, h.app.Export())
}

func TestExportImportRoundTrip(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	_, err := a.AddCategory(core.Category{ID: "books", Name: "Books", Color: "#123456", Icon: "book"})
	require.NoError(t, err)
	ev, err := a.AddEvent(core.Event{Name: "Trip", Budget: core.Cents(123456)})
	require.NoError(t, err)
	_, err = a.AddTransaction(income("salary", 250050, "2025-03-01"))
	require.NoError(t, err)
	_, err = a.AddTransaction(expense("novel", 1999, "2025-02-14", "books"))
	require.NoError(t, err)
	trip := expense("train", 4510, "2025-03-09", "transport")
	trip.EventID = ev.ID
	_, err = a.AddTransaction(trip)
	require.NoError(t, err)
	require.NoError(t, a.SetBudget("2025-03", []core.BudgetEntry{{CategoryID: "books", Amount: core.Cents(2500)}}))

	exported := a.Export()
	var buf bytes.Buffer
	require.NoError(t, backup.Encode(&buf, exported))

	// Diverge before importing the file back.
	_, err = a.DeleteCategory("books")
	require.NoError(t, err)
	_, err = a.DeleteEvent(ev.ID)
	require.NoError(t, err)

	confirmed := false
	require.NoError(t, a.ImportFrom(&buf, func(doc backup.Document) bool {
		confirmed = true
		return len(doc.Transactions) == 3
	}))
	assert.True(t, confirmed)
	assert.Equal(t, exported, a.Export())

	h.reload()
	assert.Equal(t, exported, h.app.Export())
}

func TestImportAddsMissingFallbackCategory(t *testing.T) {
	h := newHarness(t, memory.New(0))
	require.NoError(t, h.app.Import(backup.Document{
		Transactions: []core.Transaction{},
		Categories:   []core.Category{{ID: "food", Name: "Food"}},
		Budgets:      core.Budgets{},
		Events:       []core.Event{},
	}, nil))

	cats := h.app.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, core.FallbackCategoryID, cats[1].ID)
}

func TestUnavailableStorageRunsInMemory(t *testing.T) {
	m := memory.New(0)
	m.SetDisabled(true)
	h := newHarness(t, m)

	_, err := h.app.AddTransaction(income("salary", 1000, "2025-03-01"))
	require.NoError(t, err)
	_, err = h.app.AddTransaction(income("bonus", 500, "2025-03-02"))
	require.NoError(t, err)
	assert.Len(t, h.app.Transactions(), 2)
	assert.False(t, h.app.Store().Available())
	assert.Equal(t, []kv.Warning{kv.WarnUnavailable}, h.warnings)
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	// Room for the probe and little else.
	h := newHarness(t, memory.New(64))

	_, err := h.app.AddTransaction(income("a long description that will not fit", 1000, "2025-03-01"))
	require.NoError(t, err)
	_, err = h.app.AddTransaction(income("another one", 1000, "2025-03-02"))
	require.NoError(t, err)

	assert.Len(t, h.app.Transactions(), 2)
	assert.Equal(t, []kv.Warning{kv.WarnWriteFailed}, h.warnings)
}

func TestSettings(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	assert.Error(t, a.SetTheme("neon"))
	assert.Error(t, a.SetNotificationFrequency("hourly"))
	assert.Error(t, a.SetLanguage("!!"))
	require.NoError(t, a.SetLanguage("pt_br"))
	assert.Equal(t, "pt-BR", a.Settings().Language)
	assert.Equal(t, "pt-BR", a.Translator().Locale)
	assert.Equal(t, `"pt-BR"`, h.raw(t, app.KeyLanguage))
}

func TestCheckReminder(t *testing.T) {
	h := newHarness(t, memory.New(0))
	a := h.app

	_, ok := a.CheckReminder()
	assert.False(t, ok, "reminders are off by default")

	require.NoError(t, a.SetNotificationFrequency(core.NotifyDaily))
	require.NoError(t, a.SetBudget("2025-03", []core.BudgetEntry{
		{CategoryID: "food", Amount: core.Cents(10000)},
		{CategoryID: "transport", Amount: core.Cents(10000)},
	}))
	_, err := a.AddTransaction(expense("groceries", 9000, "2025-03-02", "food"))
	require.NoError(t, err)
	_, err = a.AddTransaction(expense("bus", 1000, "2025-03-02", "transport"))
	require.NoError(t, err)

	r, ok := a.CheckReminder()
	require.True(t, ok)
	assert.Equal(t, core.MonthKey("2025-03"), r.Month)
	require.Len(t, r.Alerts, 1)
	assert.Equal(t, "food", r.Alerts[0].Category.ID)

	_, ok = a.CheckReminder()
	assert.False(t, ok, "already fired today")

	h.now = h.now.Add(24 * time.Hour)
	_, ok = a.CheckReminder()
	assert.True(t, ok)

	h.reload()
	_, ok = h.app.CheckReminder()
	assert.False(t, ok, "last reminder is persisted")
}
