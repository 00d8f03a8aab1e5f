// Package i18n resolves message keys to localized strings.
//
// Keys are a closed set of constants, so an unknown message is a compile
// error rather than a blank label. Lookup walks requested locale, then its
// base language, then English.
package i18n

// Key identifies one translatable message.
type Key string

const (
	WarnStorageUnavailable Key = "warning.storage_unavailable"
	WarnCorruptedData      Key = "warning.corrupted_data"
	WarnWriteFailed        Key = "warning.write_failed"

	ErrInvalidAmount      Key = "error.invalid_amount"
	ErrEmptyDescription   Key = "error.empty_description"
	ErrEmptyName          Key = "error.empty_name"
	ErrMissingCategory    Key = "error.missing_category"
	ErrInvalidDate        Key = "error.invalid_date"
	ErrInvalidImportFile  Key = "error.invalid_import_file"
	ErrImportMissingField Key = "error.import_missing_field"
	ErrCannotDeleteOther  Key = "error.cannot_delete_other"

	ConfirmImport      Key = "confirm.import"
	ConfirmDeleteEvent Key = "confirm.delete_event"
	ImportDone         Key = "info.import_done"
	ExportDone         Key = "info.export_done"

	LabelIncome         Key = "label.income"
	LabelExpenses       Key = "label.expenses"
	LabelBalance        Key = "label.balance"
	LabelBudget         Key = "label.budget"
	LabelSpent          Key = "label.spent"
	LabelRemaining      Key = "label.remaining"
	LabelOverBudget     Key = "label.over_budget"
	LabelNoTransactions Key = "label.no_transactions"

	ReminderBudgetAlert Key = "reminder.budget_alert"
	ReminderAllOnTrack  Key = "reminder.all_on_track"

	CategoryFood          Key = "category.food"
	CategoryTransport     Key = "category.transport"
	CategoryHousing       Key = "category.housing"
	CategoryUtilities     Key = "category.utilities"
	CategoryHealth        Key = "category.health"
	CategoryEntertainment Key = "category.entertainment"
	CategoryShopping      Key = "category.shopping"
	CategoryOther         Key = "category.other"
)

// Keys lists every key; tests use it to check table coverage.
func Keys() []Key {
	return []Key{
		WarnStorageUnavailable, WarnCorruptedData, WarnWriteFailed,
		ErrInvalidAmount, ErrEmptyDescription, ErrEmptyName, ErrMissingCategory,
		ErrInvalidDate, ErrInvalidImportFile, ErrImportMissingField, ErrCannotDeleteOther,
		ConfirmImport, ConfirmDeleteEvent, ImportDone, ExportDone,
		LabelIncome, LabelExpenses, LabelBalance, LabelBudget, LabelSpent,
		LabelRemaining, LabelOverBudget, LabelNoTransactions,
		ReminderBudgetAlert, ReminderAllOnTrack,
		CategoryFood, CategoryTransport, CategoryHousing, CategoryUtilities,
		CategoryHealth, CategoryEntertainment, CategoryShopping, CategoryOther,
	}
}
