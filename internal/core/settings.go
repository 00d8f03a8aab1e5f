package core

import "fmt"

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeOcean  Theme = "ocean"
	ThemeForest Theme = "forest"
	ThemeSunset Theme = "sunset"
)

const (
	NotifyNever   NotificationFrequency = "never"
	NotifyDaily   NotificationFrequency = "daily"
	NotifyWeekly  NotificationFrequency = "weekly"
	NotifyMonthly NotificationFrequency = "monthly"
)

type (
	Theme                 string
	NotificationFrequency string
)

func Themes() []Theme {
	return []Theme{ThemeLight, ThemeDark, ThemeOcean, ThemeForest, ThemeSunset}
}

func NotificationFrequencies() []NotificationFrequency {
	return []NotificationFrequency{NotifyNever, NotifyDaily, NotifyWeekly, NotifyMonthly}
}

func (t Theme) Validate() error {
	for _, v := range Themes() {
		if t == v {
			return nil
		}
	}
	return fmt.Errorf("invalid theme %q: must be one of %v", string(t), Themes())
}

func (f NotificationFrequency) Validate() error {
	for _, v := range NotificationFrequencies() {
		if f == v {
			return nil
		}
	}
	return fmt.Errorf("invalid notification frequency %q: must be one of %v", string(f), NotificationFrequencies())
}

// DefaultCategories is the taxonomy a fresh install starts with. Names are
// translation keys resolved at display time.
func DefaultCategories() []Category {
	return []Category{
		{ID: "food", Name: "category.food", Color: "#f97316", Icon: "utensils"},
		{ID: "transport", Name: "category.transport", Color: "#3b82f6", Icon: "car"},
		{ID: "housing", Name: "category.housing", Color: "#8b5cf6", Icon: "home"},
		{ID: "utilities", Name: "category.utilities", Color: "#eab308", Icon: "zap"},
		{ID: "health", Name: "category.health", Color: "#ef4444", Icon: "heart"},
		{ID: "entertainment", Name: "category.entertainment", Color: "#ec4899", Icon: "film"},
		{ID: "shopping", Name: "category.shopping", Color: "#14b8a6", Icon: "shopping-bag"},
		FallbackCategory(),
	}
}

// FallbackCategory is the default shape of the reserved bucket.
func FallbackCategory() Category {
	return Category{ID: FallbackCategoryID, Name: "category.other", Color: "#6b7280", Icon: "tag"}
}
