package currencyinput

import (
	"sort"
	"sync"
)

// LocaleRules describes how money is written in a locale.
type LocaleRules struct {
	Locale string `json:"locale" yaml:"locale"`
	// DecimalSep and GroupSep are the number separators for the locale.
	DecimalSep string `json:"decimal_separator" yaml:"decimal_separator"`
	GroupSep   string `json:"group_separator" yaml:"group_separator"`
	// CurrencyPattern places the symbol around the amount: {symbol}, {amount}
	CurrencyPattern string `json:"currency_pattern" yaml:"currency_pattern"`
	// Currency is the ISO 4217 code used when a LocaleConfig names none.
	Currency string `json:"currency" yaml:"currency"`
}

// RulesData is the on-disk shape of the rules table.
type RulesData struct {
	CurrencySymbols map[string]string      `json:"currency_symbols" yaml:"currency_symbols"`
	Rules           map[string]LocaleRules `json:"rules" yaml:"rules"`
}

// RulesProvider looks up LocaleRules with fallback. It is immutable once built.
type RulesProvider struct {
	rules    map[string]LocaleRules
	symbols  map[string]string
	resolver FallbackResolver
}

// NewRulesProvider builds a provider from data. A nil resolver means parent
// and base-language fallback only.
func NewRulesProvider(data *RulesData, resolver FallbackResolver) *RulesProvider {
	p := &RulesProvider{
		rules:    make(map[string]LocaleRules),
		symbols:  make(map[string]string),
		resolver: resolver,
	}
	if data == nil {
		return p
	}

	for code, rules := range data.Rules {
		code = normalizeLocale(code)
		if code == "" {
			continue
		}
		if rules.Locale == "" {
			rules.Locale = code
		}
		p.rules[code] = rules
	}
	for code, symbol := range data.CurrencySymbols {
		if code == "" || symbol == "" {
			continue
		}
		p.symbols[code] = symbol
	}
	return p
}

// Get returns the rules for locale, trying the exact tag, its parents, the
// resolver chain and finally the base language. Unknown locales report false.
func (p *RulesProvider) Get(locale string) (LocaleRules, bool) {
	if p == nil || len(p.rules) == 0 {
		return LocaleRules{}, false
	}

	for _, candidate := range localeCandidates(locale, p.resolver) {
		if rules, ok := p.rules[candidate]; ok {
			return rules, true
		}
	}
	return LocaleRules{}, false
}

// Symbol returns the configured symbol override for an ISO currency code.
func (p *RulesProvider) Symbol(code string) (string, bool) {
	if p == nil {
		return "", false
	}
	symbol, ok := p.symbols[code]
	return symbol, ok
}

// Locales lists the locales with explicit rules, sorted.
func (p *RulesProvider) Locales() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, len(p.rules))
	for code := range p.rules {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

var (
	defaultRulesOnce sync.Once
	defaultRules     *RulesProvider
)

// DefaultRules returns the provider built from the embedded rules table.
func DefaultRules() *RulesProvider {
	defaultRulesOnce.Do(func() {
		data, err := NewRulesLoader("").Load()
		if err != nil {
			panic(err)
		}
		defaultRules = NewRulesProvider(data, nil)
	})
	return defaultRules
}
