// Package app is the controller that owns the tracker's state. Every
// top-level collection lives in a kv.Cell, is mutated only through the
// methods here and is persisted under its own key after each change.
//
// An App is not safe for concurrent use; callers run one operation at a time.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"budgetbook/internal/cache"
	"budgetbook/internal/core"
	"budgetbook/internal/kv"
	"budgetbook/internal/ledger"
)

// Storage keys. They are part of the on-disk format and must not change.
const (
	KeyCategories            = "categories"
	KeyTransactions          = "transactions"
	KeyBudgets               = "budgets"
	KeyEvents                = "events"
	KeyTheme                 = "theme"
	KeyLanguage              = "language"
	KeyNotificationFrequency = "notificationFrequency"
	KeyLastReminder          = "lastReminder"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrFallbackCategory = errors.New("the fallback category cannot be deleted")
	ErrImportDeclined   = errors.New("import declined")
)

const defaultViewCacheSize = 32

// Options tunes an App. The zero value is usable.
type Options struct {
	Now           func() time.Time
	Location      *time.Location
	NewID         func() string
	Logger        *slog.Logger
	Language      string
	ViewCacheSize int
}

type App struct {
	store *kv.Store

	categories   *kv.Cell[[]core.Category]
	transactions *kv.Cell[[]core.Transaction]
	budgets      *kv.Cell[core.Budgets]
	events       *kv.Cell[[]core.Event]
	theme        *kv.Cell[core.Theme]
	language     *kv.Cell[string]
	frequency    *kv.Cell[core.NotificationFrequency]
	lastReminder *kv.Cell[time.Time]

	now    func() time.Time
	loc    *time.Location
	newID  func() string
	logger *slog.Logger

	// revision changes on every mutation and keys the view caches.
	revision   uint64
	dashboards cache.Cache[Dashboard]
	histories  cache.Cache[[]ledger.MonthBucket]
}

// New builds the controller over store and loads every key. A missing
// fallback category is restored on load.
func New(store *kv.Store, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Language == "" {
		opts.Language = "en"
	}
	if opts.ViewCacheSize <= 0 {
		opts.ViewCacheSize = defaultViewCacheSize
	}

	a := &App{
		store:        store,
		categories:   kv.NewCell(store, KeyCategories, core.DefaultCategories()),
		transactions: kv.NewCell(store, KeyTransactions, []core.Transaction{}),
		budgets:      kv.NewCell(store, KeyBudgets, core.Budgets{}),
		events:       kv.NewCell(store, KeyEvents, []core.Event{}),
		theme:        kv.NewCell(store, KeyTheme, core.ThemeLight),
		language:     kv.NewCell(store, KeyLanguage, opts.Language),
		frequency:    kv.NewCell(store, KeyNotificationFrequency, core.NotifyNever),
		lastReminder: kv.NewCell(store, KeyLastReminder, time.Time{}),
		now:          opts.Now,
		loc:          opts.Location,
		newID:        opts.NewID,
		logger:       opts.Logger.With("component", "app"),
		dashboards:   cache.NewLRUCache[Dashboard](opts.ViewCacheSize, 0),
		histories:    cache.NewLRUCache[[]ledger.MonthBucket](opts.ViewCacheSize, 0),
	}
	a.normalize()
	return a
}

// normalize repairs loaded state that decoded fine but violates an
// invariant: null collections and a missing fallback category.
func (a *App) normalize() {
	cats := a.categories.Get()
	hasFallback := false
	for _, c := range cats {
		if c.ID == core.FallbackCategoryID {
			hasFallback = true
			break
		}
	}
	if cats == nil || !hasFallback {
		fixed := append([]core.Category{}, cats...)
		if !hasFallback {
			a.logger.Warn("Fallback category missing, restoring it")
			fixed = append(fixed, core.FallbackCategory())
		}
		a.persist(a.categories.Set(fixed))
	}
	if a.transactions.Get() == nil {
		a.persist(a.transactions.Set([]core.Transaction{}))
	}
	if a.budgets.Get() == nil {
		a.persist(a.budgets.Set(core.Budgets{}))
	}
	if a.events.Get() == nil {
		a.persist(a.events.Set([]core.Event{}))
	}
}

// Store exposes the underlying adapter, mainly so callers can ask whether
// the session is persistent.
func (a *App) Store() *kv.Store { return a.store }

// Now returns the controller's clock reading in its location.
func (a *App) Now() time.Time { return a.now().In(a.loc) }

// CurrentMonth is the month containing now in the configured location.
func (a *App) CurrentMonth() core.MonthKey {
	return core.CurrentMonth(a.now(), a.loc)
}

// Today is the calendar date of now in the configured location.
func (a *App) Today() core.Date {
	return core.Today(a.now(), a.loc)
}

// persist absorbs a write error. The store has already warned the user
// once; the in-memory value stays authoritative for the session.
func (a *App) persist(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, kv.ErrUnavailable) {
		return
	}
	a.logger.Debug("Change kept in memory only", "error", err)
}

// changed marks derived views stale.
func (a *App) changed() {
	a.revision++
}

func (a *App) viewKey(name string) string {
	return fmt.Sprintf("%d/%s", a.revision, name)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
