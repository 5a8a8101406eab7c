package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	currencyinput "github.com/goliatone/go-currency-input"
	"golang.org/x/text/language"
)

type localeSpec struct {
	Locale   string
	Currency string
}

type generatorConfig struct {
	out     string
	base    string
	force   bool
	locales []localeSpec
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "locale-rules: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.out, "out", filepath.Join("data", "locale_rules.json"), "path to the generated rules file")
	flag.StringVar(&cfg.base, "base", "", "JSON or YAML rules merged over the embedded table before generating")
	flag.BoolVar(&cfg.force, "force", false, "replace locales that already have rules")
	flag.Var(&localeList, "locale", "locale to generate (optionally with a currency using locale:CODE). Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, spec := range localeList.items {
		parsed, err := parseLocaleSpec(spec)
		if err != nil {
			return generatorConfig{}, err
		}
		cfg.locales = append(cfg.locales, parsed)
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := currencyinput.NewRulesLoader(cfg.base).Load()
	if err != nil {
		return err
	}
	if data.Rules == nil {
		data.Rules = make(map[string]currencyinput.LocaleRules)
	}
	if data.CurrencySymbols == nil {
		data.CurrencySymbols = make(map[string]string)
	}

	for _, spec := range cfg.locales {
		if _, exists := data.Rules[spec.Locale]; exists && !cfg.force {
			continue
		}

		rules, symbol, err := buildRules(spec)
		if err != nil {
			return fmt.Errorf("build rules for %s: %w", spec.Locale, err)
		}
		data.Rules[spec.Locale] = rules
		if rules.Currency != "" && symbol != "" {
			if _, exists := data.CurrencySymbols[rules.Currency]; !exists {
				data.CurrencySymbols[rules.Currency] = symbol
			}
		}
	}

	source, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	source = append(source, '\n')

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func parseLocaleSpec(input string) (localeSpec, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return localeSpec{}, errors.New("empty locale value")
	}

	spec := localeSpec{}
	if strings.Contains(input, ":") {
		parts := strings.SplitN(input, ":", 2)
		spec.Locale = strings.TrimSpace(parts[0])
		spec.Currency = strings.ToUpper(strings.TrimSpace(parts[1]))
	} else {
		spec.Locale = input
	}

	spec.Locale = strings.ReplaceAll(spec.Locale, "_", "-")
	if spec.Locale == "" {
		return localeSpec{}, fmt.Errorf("invalid locale spec %q", input)
	}
	if _, err := language.Parse(spec.Locale); err != nil {
		return localeSpec{}, fmt.Errorf("invalid locale %q: %w", spec.Locale, err)
	}
	return spec, nil
}

func buildRules(spec localeSpec) (currencyinput.LocaleRules, string, error) {
	rules := currencyinput.CLDRRules(spec.Locale)
	if spec.Currency != "" {
		rules.Currency = spec.Currency
	}
	if rules.DecimalSep == rules.GroupSep {
		return rules, "", fmt.Errorf("separators collide (%q)", rules.DecimalSep)
	}
	if rules.Currency == "" {
		return rules, "", nil
	}

	format := currencyinput.ResolveLocale(currencyinput.LocaleConfig{
		Locale:   spec.Locale,
		Currency: rules.Currency,
	})
	return rules, format.Symbol, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
