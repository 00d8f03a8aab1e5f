package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// FallbackCategoryID is the reserved category that absorbs transactions whose
// category was deleted. It can be renamed but never removed.
const FallbackCategoryID = "other"

type (
	Kind string

	// Date is a calendar date in ISO form (YYYY-MM-DD) without a timezone.
	Date string

	// MonthKey is the YYYY-MM bucket used for budgets and history.
	MonthKey string

	Transaction struct {
		ID          string `json:"id"`
		Kind        Kind   `json:"kind"`
		Amount      Money  `json:"amount"`
		Description string `json:"description"`
		Date        Date   `json:"date"`
		CategoryID  string `json:"categoryId,omitempty"`
		EventID     string `json:"eventId,omitempty"`
	}

	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Icon  string `json:"icon"`
	}

	BudgetEntry struct {
		CategoryID string `json:"categoryId"`
		Amount     Money  `json:"amount"`
	}

	// Budgets maps a month to its ordered budget entries.
	Budgets map[MonthKey][]BudgetEntry

	Event struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Budget Money  `json:"budget"`
	}
)

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidMonth       = errors.New("invalid month")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidKind        = errors.New("invalid transaction kind")
	ErrEmptyDescription   = errors.New("empty description")
	ErrEmptyName          = errors.New("empty name")
	ErrMissingCategory    = errors.New("expense requires a category")
	ErrUnexpectedCategory = errors.New("income cannot have a category")
	ErrDuplicateCategory  = errors.New("duplicate category in budget")
)

const dateLayout = "2006-01-02"
const monthLayout = "2006-01"

// DateOf formats t as a Date in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	return nil
}

// Month is the first seven characters of the date. It does not validate;
// malformed dates simply land in a malformed bucket.
func (d Date) Month() MonthKey {
	s := string(d)
	if len(s) < 7 {
		return MonthKey(s)
	}
	return MonthKey(s[:7])
}

// CurrentMonth returns the month containing now, observed in loc. A nil loc
// means time.Local.
func CurrentMonth(now time.Time, loc *time.Location) MonthKey {
	if loc == nil {
		loc = time.Local
	}
	return MonthKey(now.In(loc).Format(monthLayout))
}

// Today returns the calendar date of now in loc.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(now.In(loc))
}

func ParseMonthKey(s string) (MonthKey, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(monthLayout, s); err != nil || len(s) != 7 {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return MonthKey(s), nil
}

func (m MonthKey) Validate() error {
	_, err := ParseMonthKey(string(m))
	return err
}

// Prev returns the month before m. m must be valid.
func (m MonthKey) Prev() MonthKey {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return m
	}
	return MonthKey(t.AddDate(0, -1, 0).Format(monthLayout))
}

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Validate checks the record in isolation. Whether CategoryID and EventID
// resolve is the controller's concern.
func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, string(t.Kind))
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	switch t.Kind {
	case Expense:
		if strings.TrimSpace(t.CategoryID) == "" {
			return ErrMissingCategory
		}
	case Income:
		if t.CategoryID != "" {
			return ErrUnexpectedCategory
		}
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	return e.Budget.Validate()
}

// Clone returns a deep copy so callers can mutate without aliasing stored
// slices.
func (b Budgets) Clone() Budgets {
	out := make(Budgets, len(b))
	for m, entries := range b {
		out[m] = append([]BudgetEntry(nil), entries...)
	}
	return out
}

// NormalizeBudget drops zero entries and rejects negative amounts and
// duplicate categories. Order is preserved.
func NormalizeBudget(entries []BudgetEntry) ([]BudgetEntry, error) {
	seen := make(map[string]struct{}, len(entries))
	out := make([]BudgetEntry, 0, len(entries))
	for _, e := range entries {
		if e.Amount.Cents < 0 {
			return nil, ErrInvalidAmount
		}
		if strings.TrimSpace(e.CategoryID) == "" {
			return nil, ErrMissingCategory
		}
		if _, dup := seen[e.CategoryID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, e.CategoryID)
		}
		seen[e.CategoryID] = struct{}{}
		if e.Amount.IsZero() {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
