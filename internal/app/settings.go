package app

import (
	"budgetbook/internal/core"
	"budgetbook/internal/i18n"
)

// Settings is the persisted user preferences.
type Settings struct {
	Theme                 core.Theme                 `json:"theme"`
	Language              string                     `json:"language"`
	NotificationFrequency core.NotificationFrequency `json:"notificationFrequency"`
}

func (a *App) Settings() Settings {
	return Settings{
		Theme:                 a.theme.Get(),
		Language:              a.language.Get(),
		NotificationFrequency: a.frequency.Get(),
	}
}

func (a *App) SetTheme(t core.Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.persist(a.theme.Set(t))
	return nil
}

// SetLanguage stores the canonical form of locale. Locales without a table
// are accepted; lookups fall back along the chain.
func (a *App) SetLanguage(locale string) error {
	canonical, err := i18n.Canonical(locale)
	if err != nil {
		return err
	}
	a.persist(a.language.Set(canonical))
	return nil
}

func (a *App) SetNotificationFrequency(f core.NotificationFrequency) error {
	if err := f.Validate(); err != nil {
		return err
	}
	a.persist(a.frequency.Set(f))
	return nil
}

// Translator binds the stored language.
func (a *App) Translator() i18n.Translator {
	return i18n.Translator{Locale: a.language.Get()}
}
