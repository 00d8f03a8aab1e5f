// Package services holds the small policies layered over the controller.
//
// This file implements the Strategy Pattern for reminder dueness checking.
// Each notification frequency has its own strategy deciding whether a new
// reminder should fire given when the last one fired.
package services

import (
	"fmt"
	"time"

	"budgetbook/internal/core"
)

// DuenessChecker is the strategy interface for checking if a reminder is due.
type DuenessChecker interface {
	// IsDue reports whether a reminder should fire at now. A zero last means
	// no reminder ever fired.
	IsDue(last, now time.Time) bool
}

// NeverChecker is used when reminders are switched off.
type NeverChecker struct{}

func (NeverChecker) IsDue(_, _ time.Time) bool { return false }

// DailyChecker implements DuenessChecker for daily reminders.
type DailyChecker struct{}

// IsDue returns true if the last reminder fired on an earlier calendar day.
func (DailyChecker) IsDue(last, now time.Time) bool {
	if last.IsZero() {
		return true
	}
	return last.In(now.Location()).Format("2006-01-02") != now.Format("2006-01-02")
}

// WeeklyChecker implements DuenessChecker for weekly reminders.
type WeeklyChecker struct{}

// IsDue returns true if 7 or more days have passed since the last reminder.
func (WeeklyChecker) IsDue(last, now time.Time) bool {
	if last.IsZero() {
		return true
	}
	daysSince := now.Sub(last).Hours() / 24
	return daysSince >= 7
}

// MonthlyChecker implements DuenessChecker for monthly reminders.
type MonthlyChecker struct{}

// IsDue returns true once per calendar month.
func (MonthlyChecker) IsDue(last, now time.Time) bool {
	if last.IsZero() {
		return true
	}
	last = last.In(now.Location())
	return last.Year() != now.Year() || last.Month() != now.Month()
}

// duenessStrategies maps notification frequencies to their checkers.
var duenessStrategies = map[core.NotificationFrequency]DuenessChecker{
	core.NotifyNever:   NeverChecker{},
	core.NotifyDaily:   DailyChecker{},
	core.NotifyWeekly:  WeeklyChecker{},
	core.NotifyMonthly: MonthlyChecker{},
}

// GetDuenessChecker returns the checker for a notification frequency.
func GetDuenessChecker(frequency core.NotificationFrequency) (DuenessChecker, error) {
	checker, ok := duenessStrategies[frequency]
	if !ok {
		return nil, fmt.Errorf("unknown notification frequency: %s", frequency)
	}
	return checker, nil
}

// ReminderDue reports whether a reminder is due. Unknown frequencies are
// treated like "never".
func ReminderDue(frequency core.NotificationFrequency, last, now time.Time) bool {
	checker, err := GetDuenessChecker(frequency)
	if err != nil {
		return false
	}
	return checker.IsDue(last, now)
}
