package currencyinput

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/locale_rules.json
var defaultLocaleRulesJSON []byte

// RulesLoader loads the rules table from the embedded defaults plus optional files.
type RulesLoader struct {
	defaultPath string
	overrides   map[string]string
}

// NewRulesLoader creates a loader. An empty path loads the embedded table only.
func NewRulesLoader(defaultPath string) *RulesLoader {
	return &RulesLoader{
		defaultPath: defaultPath,
		overrides:   make(map[string]string),
	}
}

// AddOverride registers a file whose rules replace the entry for locale.
func (l *RulesLoader) AddOverride(locale, path string) {
	l.overrides[normalizeLocale(locale)] = path
}

// Load reads the embedded table and merges user files on top of it.
func (l *RulesLoader) Load() (*RulesData, error) {
	var rulesData RulesData
	if err := json.Unmarshal(defaultLocaleRulesJSON, &rulesData); err != nil {
		return nil, fmt.Errorf("parse default locale rules: %w", err)
	}

	if l.defaultPath != "" {
		userData, err := readRulesFile(l.defaultPath)
		if err != nil {
			return nil, fmt.Errorf("load locale rules: %w", err)
		}
		mergeRulesData(&rulesData, userData)
	}

	for locale, path := range l.overrides {
		if err := l.loadOverride(&rulesData, locale, path); err != nil {
			return nil, err
		}
	}

	return &rulesData, nil
}

// LoadRules builds a provider from the embedded table merged with paths, in order.
func LoadRules(paths ...string) (*RulesProvider, error) {
	data, err := NewRulesLoader("").Load()
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		userData, err := readRulesFile(path)
		if err != nil {
			return nil, fmt.Errorf("load locale rules: %w", err)
		}
		mergeRulesData(data, userData)
	}
	return NewRulesProvider(data, nil), nil
}

func (l *RulesLoader) loadOverride(base *RulesData, locale, path string) error {
	override, err := readRulesFile(path)
	if err != nil {
		return fmt.Errorf("load locale override for %q: %w", locale, err)
	}

	rules, ok := override.Rules[locale]
	if !ok {
		return fmt.Errorf("locale override %q: no rules for locale in %s", locale, path)
	}
	if base.Rules == nil {
		base.Rules = make(map[string]LocaleRules)
	}
	base.Rules[locale] = rules

	for code, symbol := range override.CurrencySymbols {
		if base.CurrencySymbols == nil {
			base.CurrencySymbols = make(map[string]string)
		}
		base.CurrencySymbols[code] = symbol
	}
	return nil
}

func readRulesFile(path string) (*RulesData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data RulesData
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	normalized := make(map[string]LocaleRules, len(data.Rules))
	for code, rules := range data.Rules {
		normalized[normalizeLocale(code)] = rules
	}
	data.Rules = normalized
	return &data, nil
}

// mergeRulesData merges source into dest (source takes precedence)
func mergeRulesData(dest, source *RulesData) {
	if source.Rules != nil {
		if dest.Rules == nil {
			dest.Rules = make(map[string]LocaleRules)
		}
		for k, v := range source.Rules {
			dest.Rules[k] = v
		}
	}

	if source.CurrencySymbols != nil {
		if dest.CurrencySymbols == nil {
			dest.CurrencySymbols = make(map[string]string)
		}
		for k, v := range source.CurrencySymbols {
			dest.CurrencySymbols[k] = v
		}
	}
}
