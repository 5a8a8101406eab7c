package currencyinput

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	defaultDecimalSeparator = "."
	defaultGroupSeparator   = ","
	defaultCurrencyPattern  = "{symbol}{amount}"
)

// CurrencyDisplay selects how a currency is rendered in the affix.
type CurrencyDisplay string

const (
	CurrencySymbol       CurrencyDisplay = "symbol"
	CurrencyNarrowSymbol CurrencyDisplay = "narrowSymbol"
	CurrencyCode         CurrencyDisplay = "code"
)

// LocaleConfig is the abstract locale input: a locale tag plus an optional
// ISO 4217 currency. Without a currency no affix is derived; "auto" picks the
// default currency of the locale from the rules table.
type LocaleConfig struct {
	Locale          string          `json:"locale" yaml:"locale"`
	Currency        string          `json:"currency,omitempty" yaml:"currency,omitempty"`
	CurrencyDisplay CurrencyDisplay `json:"currencyDisplay,omitempty" yaml:"currencyDisplay,omitempty"`
}

// Separators holds the effective decimal and group separators.
type Separators struct {
	Decimal string
	Group   string
}

// LocaleFormat is everything a LocaleConfig contributes to formatting.
type LocaleFormat struct {
	Separators
	Symbol string
	Prefix string
	Suffix string
}

// ResolveSeparators derives the effective separators from explicit values and
// an optional locale using the embedded rules table.
func ResolveSeparators(explicitDecimal, explicitGroup string, locale *LocaleConfig) (Separators, error) {
	return resolveSeparators(explicitDecimal, explicitGroup, locale, DefaultRules())
}

func resolveSeparators(explicitDecimal, explicitGroup string, locale *LocaleConfig, rules *RulesProvider) (Separators, error) {
	seps := Separators{Decimal: explicitDecimal, Group: explicitGroup}

	if seps.Decimal == "" || seps.Group == "" {
		derived := Separators{Decimal: defaultDecimalSeparator, Group: defaultGroupSeparator}
		if locale != nil && strings.TrimSpace(locale.Locale) != "" {
			derived = ResolveLocaleWith(*locale, rules).Separators
		}
		if seps.Decimal == "" {
			seps.Decimal = derived.Decimal
		}
		if seps.Group == "" {
			seps.Group = derived.Group
		}
	}

	if err := validateSeparators(seps); err != nil {
		return Separators{}, err
	}
	return seps, nil
}

func validateSeparators(seps Separators) error {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"decimalSeparator", seps.Decimal},
		{"groupSeparator", seps.Group},
	} {
		if strings.ContainsFunc(field.value, unicode.IsDigit) {
			return &ConfigError{Field: field.name, Value: field.value, Reason: "separator cannot contain digits"}
		}
		if strings.Contains(field.value, "-") {
			return &ConfigError{Field: field.name, Value: field.value, Reason: "separator cannot contain a minus sign"}
		}
	}
	if seps.Decimal == seps.Group {
		return &ConfigError{Field: "decimalSeparator", Value: seps.Decimal, Reason: "decimalSeparator cannot be the same as groupSeparator"}
	}
	return nil
}

// ResolveLocale resolves cfg against the embedded rules table.
func ResolveLocale(cfg LocaleConfig) LocaleFormat {
	return ResolveLocaleWith(cfg, DefaultRules())
}

// ResolveLocaleWith resolves separators and currency affixes for cfg. Rules
// from the provider win; locales it does not know fall back to CLDR data.
func ResolveLocaleWith(cfg LocaleConfig, rules *RulesProvider) LocaleFormat {
	locale := normalizeLocale(cfg.Locale)
	tag := language.Make(locale)

	out := LocaleFormat{}
	pattern := defaultCurrencyPattern

	r, known := rules.Get(locale)
	if known && r.DecimalSep != "" {
		out.Decimal = r.DecimalSep
		out.Group = r.GroupSep
		if r.CurrencyPattern != "" {
			pattern = r.CurrencyPattern
		}
	} else {
		out.Separators = probeSeparators(tag)
	}

	code := strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if code == "AUTO" {
		code = strings.ToUpper(r.Currency)
		if !known {
			code = CLDRRules(locale).Currency
		}
	}
	if code == "" {
		return out
	}

	out.Symbol = currencySymbol(tag, code, cfg.CurrencyDisplay, rules)
	out.Prefix, out.Suffix = splitCurrencyPattern(pattern, out.Symbol)
	return out
}

// CLDRRules derives rules for locale from the CLDR data bundled with x/text:
// separators from the number printer and the currency of the likely region.
// CLDR currency placement is not exposed by x/text, so the pattern is always
// the default symbol-first one.
func CLDRRules(locale string) LocaleRules {
	locale = normalizeLocale(locale)
	tag := language.Make(locale)
	seps := probeSeparators(tag)

	rules := LocaleRules{
		Locale:          locale,
		DecimalSep:      seps.Decimal,
		GroupSep:        seps.Group,
		CurrencyPattern: defaultCurrencyPattern,
	}
	if unit, confidence := currency.FromTag(tag); confidence != language.No {
		rules.Currency = unit.String()
	}
	return rules
}

// probeSeparators formats a sample through the CLDR-backed printer and reads
// the separators back out of it.
func probeSeparators(tag language.Tag) Separators {
	printer := message.NewPrinter(tag)
	sample := printer.Sprintf("%v", number.Decimal(1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	var runs []string
	var current strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if current.Len() > 0 {
				runs = append(runs, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(r)
	}

	seps := Separators{Decimal: defaultDecimalSeparator, Group: defaultGroupSeparator}
	switch len(runs) {
	case 0:
	case 1:
		seps.Decimal = runs[0]
		if seps.Decimal == defaultGroupSeparator {
			seps.Group = defaultDecimalSeparator
		}
	default:
		seps.Group = runs[0]
		seps.Decimal = runs[len(runs)-1]
	}
	return seps
}

func currencySymbol(tag language.Tag, code string, display CurrencyDisplay, rules *RulesProvider) string {
	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return code
	}
	if display == CurrencyCode {
		return unit.String()
	}
	if display != CurrencyNarrowSymbol {
		if symbol, ok := rules.Symbol(unit.String()); ok {
			return symbol
		}
	}

	kind := currency.Symbol
	if display == CurrencyNarrowSymbol {
		kind = currency.NarrowSymbol
	}

	// The printer renders symbol and amount together; strip the amount.
	const probe = 1.0
	opts := []number.Option{number.MinFractionDigits(2), number.MaxFractionDigits(2)}
	symbol := extractSymbol(message.NewPrinter(tag), kind, unit, probe, opts)
	if symbol == "" || symbol == unit.String() {
		symbol = extractSymbol(message.NewPrinter(language.English), kind, unit, probe, opts)
	}
	if symbol == "" {
		symbol = unit.String()
	}
	return symbol
}

func extractSymbol(printer *message.Printer, kind currency.Formatter, unit currency.Unit, amount float64, opts []number.Option) string {
	full := printer.Sprintf("%v", kind(unit.Amount(amount)))
	formattedAmount := printer.Sprintf("%v", number.Decimal(amount, opts...))
	symbol := strings.ReplaceAll(full, formattedAmount, "")
	// Printers that render the amount differently leave digits behind.
	symbol = strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, symbol)
	return strings.Trim(symbol, " \u00a0.,")
}

// splitCurrencyPattern turns "{amount} {symbol}" into the affixes around the amount.
func splitCurrencyPattern(pattern, symbol string) (prefix, suffix string) {
	idx := strings.Index(pattern, "{amount}")
	if idx < 0 {
		return symbol, ""
	}
	prefix = strings.ReplaceAll(pattern[:idx], "{symbol}", symbol)
	suffix = strings.ReplaceAll(pattern[idx+len("{amount}"):], "{symbol}", symbol)
	return prefix, suffix
}
