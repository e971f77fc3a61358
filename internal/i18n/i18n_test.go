package i18n

import "testing"

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{"en", LocaleEN, false},
		{"it-IT", LocaleIT, false},
		{"IT", LocaleIT, false},
		{"en_GB", LocaleEN, false},
		{" it_CH ", LocaleIT, false},
		{"pt-BR", DefaultLocale, true},
		{"not a tag!", DefaultLocale, true},
		{"", DefaultLocale, false},
		{"fr", DefaultLocale, true},
	}
	for _, tt := range tests {
		got, err := ParseLocale(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLocale(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestT_Fallbacks(t *testing.T) {
	if got := T(LocaleIT, "phase.review"); got != "Ripasso" {
		t.Errorf("it phase.review = %q", got)
	}
	// Numeric options are shared with English.
	if got := T(LocaleIT, "check.math.easy.a"); got != "x = 5" {
		t.Errorf("it fallback = %q, want English text", got)
	}
	if got := T(LocaleEN, "no.such.key"); got != "no.such.key" {
		t.Errorf("missing key = %q, want key", got)
	}
	if got := T(LocaleEN, "checkpoint.practice", 12); got != "Practice set: 12 questions" {
		t.Errorf("formatted = %q", got)
	}
}

func TestCatalog_NoOrphanTranslations(t *testing.T) {
	for _, l := range Locales() {
		for k := range texts[l] {
			if !Has(k) {
				t.Errorf("%s has key %q absent from %s", l, k, DefaultLocale)
			}
		}
	}
	if m := Missing(LocaleEN); len(m) != 0 {
		t.Errorf("default locale reports missing keys: %v", m)
	}
}

func TestT_LocaleNumberFormatting(t *testing.T) {
	if got := T(LocaleEN, "ui.history.plans", 2, 6, 7.5); got != "2 plans, last 6w × 7.5h" {
		t.Errorf("en = %q", got)
	}
	if got := T(LocaleIT, "ui.history.plans", 2, 6, 7.5); got != "2 piani, ultimo 6s × 7,5h" {
		t.Errorf("it = %q", got)
	}
	if got := T(Locale("xx"), "checkpoint.practice", 3); got != "Practice set: 3 questions" {
		t.Errorf("unknown locale = %q", got)
	}
}
