package currencyinput

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

func TestResolveSeparators(t *testing.T) {
	tests := []struct {
		name     string
		decimal  string
		group    string
		locale   *LocaleConfig
		expected Separators
	}{
		{name: "defaults", expected: Separators{Decimal: ".", Group: ","}},
		{name: "explicit", decimal: ",", group: ".", expected: Separators{Decimal: ",", Group: "."}},
		{name: "german", locale: &LocaleConfig{Locale: "de-DE"}, expected: Separators{Decimal: ",", Group: "."}},
		{name: "french", locale: &LocaleConfig{Locale: "fr"}, expected: Separators{Decimal: ",", Group: " "}},
		{name: "spanish mexico falls back to base", locale: &LocaleConfig{Locale: "es-MX"}, expected: Separators{Decimal: ",", Group: "."}},
		{name: "japanese", locale: &LocaleConfig{Locale: "ja"}, expected: Separators{Decimal: ".", Group: ","}},
		{name: "swiss german", locale: &LocaleConfig{Locale: "de-CH"}, expected: Separators{Decimal: ".", Group: "’"}},
		{name: "underscore tag", locale: &LocaleConfig{Locale: "pt_BR"}, expected: Separators{Decimal: ",", Group: "."}},
		{name: "explicit group over locale", group: " ", locale: &LocaleConfig{Locale: "de"}, expected: Separators{Decimal: ",", Group: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSeparators(tt.decimal, tt.group, tt.locale)
			if err != nil {
				t.Fatalf("ResolveSeparators: %v", err)
			}
			if got != tt.expected {
				t.Fatalf("ResolveSeparators = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestResolveSeparatorsRejectsCollisions(t *testing.T) {
	tests := []struct {
		name    string
		decimal string
		group   string
		field   string
	}{
		{name: "same separator", decimal: ".", group: ".", field: "decimalSeparator"},
		{name: "explicit decimal equals default group", decimal: ",", field: "decimalSeparator"},
		{name: "digit", decimal: "1", group: ",", field: "decimalSeparator"},
		{name: "minus", decimal: ".", group: "-", field: "groupSeparator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveSeparators(tt.decimal, tt.group, nil)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Fatalf("field = %q, want %q", cfgErr.Field, tt.field)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected errors.Is(err, ErrInvalidConfig)")
			}
		})
	}
}

func TestResolveLocaleCurrencyAffixes(t *testing.T) {
	tests := []struct {
		name   string
		cfg    LocaleConfig
		prefix string
		suffix string
	}{
		{name: "us dollar", cfg: LocaleConfig{Locale: "en-US", Currency: "USD"}, prefix: "$"},
		{name: "euro in germany", cfg: LocaleConfig{Locale: "de-DE", Currency: "EUR"}, suffix: " €"},
		{name: "euro in the netherlands", cfg: LocaleConfig{Locale: "nl", Currency: "eur"}, prefix: "€ "},
		{name: "ruble", cfg: LocaleConfig{Locale: "ru", Currency: "RUB"}, suffix: " ₽"},
		{name: "yen", cfg: LocaleConfig{Locale: "ja", Currency: "JPY"}, prefix: "¥"},
		{name: "iso code", cfg: LocaleConfig{Locale: "en", Currency: "USD", CurrencyDisplay: CurrencyCode}, prefix: "USD"},
		{name: "locale default", cfg: LocaleConfig{Locale: "en-GB", Currency: "auto"}, prefix: "£"},
		{name: "unknown code", cfg: LocaleConfig{Locale: "en", Currency: "ZZZ"}, prefix: "ZZZ"},
		{name: "no currency", cfg: LocaleConfig{Locale: "de"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLocale(tt.cfg)
			if got.Prefix != tt.prefix || got.Suffix != tt.suffix {
				t.Fatalf("ResolveLocale(%+v) affixes = %q/%q, want %q/%q", tt.cfg, got.Prefix, got.Suffix, tt.prefix, tt.suffix)
			}
		})
	}
}

func TestResolveLocaleFromCLDR(t *testing.T) {
	// Danish is not in the rules table; the separators come from CLDR.
	got := ResolveLocale(LocaleConfig{Locale: "da"})
	if got.Decimal != "," || got.Group != "." {
		t.Fatalf("ResolveLocale(da) = %+v, want decimal \",\" group \".\"", got.Separators)
	}

	cad := ResolveLocale(LocaleConfig{Locale: "en", Currency: "CAD"})
	if cad.Symbol == "" || strings.ContainsFunc(cad.Symbol, unicode.IsDigit) {
		t.Fatalf("CAD symbol = %q, want a symbol without digits", cad.Symbol)
	}
}

func TestSplitCurrencyPattern(t *testing.T) {
	tests := []struct {
		pattern string
		prefix  string
		suffix  string
	}{
		{pattern: "{symbol}{amount}", prefix: "$"},
		{pattern: "{amount} {symbol}", suffix: " $"},
		{pattern: "{symbol} {amount}", prefix: "$ "},
		{pattern: "no amount", prefix: "$"},
	}
	for _, tt := range tests {
		prefix, suffix := splitCurrencyPattern(tt.pattern, "$")
		if prefix != tt.prefix || suffix != tt.suffix {
			t.Fatalf("splitCurrencyPattern(%q) = %q/%q, want %q/%q", tt.pattern, prefix, suffix, tt.prefix, tt.suffix)
		}
	}
}
