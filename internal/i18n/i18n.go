// Package i18n holds the localized text catalog used by the quiz and the
// roadmap goals. Lookups are pure key → string; nothing in the scoring or
// planning code depends on display text.
package i18n

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Locale identifies a supported catalog language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleIT Locale = "it"
)

// DefaultLocale is used when a requested locale is unknown.
const DefaultLocale = LocaleEN

var (
	supported = []language.Tag{language.English, language.Italian}
	matcher   = language.NewMatcher(supported)
	printers  = newPrinters()
)

// Locales returns all supported locales in display order.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleIT}
}

func (l Locale) tag() language.Tag {
	return language.Make(string(l))
}

// newPrinters loads the texts into an x/text catalog with English as the
// fallback and returns one printer per locale.
func newPrinters() map[Locale]*message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(DefaultLocale.tag()))
	for l, msgs := range texts {
		for k, v := range msgs {
			if err := b.SetString(l.tag(), k, v); err != nil {
				panic(fmt.Sprintf("i18n: %s %q: %v", l, k, err))
			}
		}
	}
	out := make(map[Locale]*message.Printer, len(texts))
	for _, l := range Locales() {
		out[l] = message.NewPrinter(l.tag(), message.Catalog(b))
	}
	return out
}

// ParseLocale matches a user-supplied BCP 47 tag ("it-IT", "EN", "en_GB")
// against the supported locales.
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return DefaultLocale, fmt.Errorf("unsupported locale %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLocale, fmt.Errorf("unsupported locale %q", s)
	}
	return Locales()[idx], nil
}

// T returns the localized string for key, formatted with args when given.
// Missing translations fall back to English, then to the key itself.
func T(locale Locale, key string, args ...any) string {
	s, ok := texts[locale][key]
	if !ok {
		s, ok = texts[DefaultLocale][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return s
	}
	p, ok := printers[locale]
	if !ok {
		p = printers[DefaultLocale]
	}
	return p.Sprintf(key, args...)
}

// Has reports whether key exists in the default catalog.
func Has(key string) bool {
	_, ok := texts[DefaultLocale][key]
	return ok
}

// Missing returns the keys of the default catalog that have no
// translation in locale, sorted.
func Missing(locale Locale) []string {
	var out []string
	for k := range texts[DefaultLocale] {
		if _, ok := texts[locale][k]; !ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
