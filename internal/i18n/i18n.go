package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// BaseLocale terminates every fallback chain and must define every key.
const BaseLocale = "en"

// Chain returns the locales consulted for locale, most specific first.
// Unparsable input falls straight to BaseLocale.
func Chain(locale string) []string {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || tag == language.Und {
		return []string{BaseLocale}
	}
	out := []string{tag.String()}
	if base, conf := tag.Base(); conf != language.No {
		if b := base.String(); b != out[0] {
			out = append(out, b)
		}
	}
	if out[len(out)-1] != BaseLocale {
		out = append(out, BaseLocale)
	}
	return out
}

// T looks key up along the locale's chain and substitutes {name}
// placeholders from args, given as alternating name/value pairs. A key
// missing everywhere renders as itself.
func T(locale string, key Key, args ...string) string {
	msg := string(key)
	for _, loc := range Chain(locale) {
		if s, ok := tables[loc][key]; ok {
			msg = s
			break
		}
	}
	if len(args) < 2 {
		return msg
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Canonical parses a BCP 47 locale and returns its canonical form, so that
// "pt_br" and "PT-br" are stored the same way.
func Canonical(locale string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(strings.ReplaceAll(locale, "_", "-")))
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	if tag == language.Und {
		return "", fmt.Errorf("invalid locale %q", locale)
	}
	return tag.String(), nil
}

// Supported lists locales with their own table.
func Supported() []string {
	return []string{"en", "it", "es", "pt", "pt-BR"}
}

// Translator binds a locale so call sites don't thread it around.
type Translator struct {
	Locale string
}

func (tr Translator) T(key Key, args ...string) string {
	return T(tr.Locale, key, args...)
}

// CategoryName renders a category name: translation-key sentinels such as
// "category.food" are looked up, free text is returned unchanged.
func (tr Translator) CategoryName(name string) string {
	return CategoryName(tr.Locale, name)
}

func CategoryName(locale, name string) string {
	if !strings.HasPrefix(name, "category.") {
		return name
	}
	key := Key(name)
	for _, k := range Keys() {
		if k == key {
			return T(locale, key)
		}
	}
	return name
}
