package main

import (
	"fmt"

	"budgetbook/internal/core"
)

type settingsCmd struct {
	Theme    string `help:"Theme: light, dark, ocean, forest or sunset."`
	Language string `help:"Locale, e.g. en, it, pt-BR."`
	Notify   string `help:"Reminder frequency: never, daily, weekly or monthly."`
}

func (c *settingsCmd) Run(rc *runContext) error {
	if c.Theme != "" {
		if err := rc.app.SetTheme(core.Theme(c.Theme)); err != nil {
			return err
		}
	}
	if c.Language != "" {
		if err := rc.app.SetLanguage(c.Language); err != nil {
			return err
		}
	}
	if c.Notify != "" {
		if err := rc.app.SetNotificationFrequency(core.NotificationFrequency(c.Notify)); err != nil {
			return err
		}
	}

	s := rc.app.Settings()
	w := newTable(rc.out)
	fmt.Fprintf(w, "theme\t%s\n", s.Theme)
	fmt.Fprintf(w, "language\t%s\n", s.Language)
	fmt.Fprintf(w, "notifications\t%s\n", s.NotificationFrequency)
	fmt.Fprintf(w, "storage\t%s\n", storageState(rc))
	return w.Flush()
}

func storageState(rc *runContext) string {
	if rc.app.Store().Available() {
		return rc.cfg.Backend
	}
	return "session only"
}
