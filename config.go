// Package currencyinput formats and parses the text of money inputs: it turns
// canonical numeric strings into localized display strings and filters user
// keystrokes and pastes back into canonical values.
package currencyinput

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode controls how the formatter drops fractional digits when a
// decimal scale is shorter than the value.
type RoundingMode int

const (
	RoundTruncate RoundingMode = iota
	RoundHalfUp
	RoundHalfEven
)

func (m RoundingMode) String() string {
	switch m {
	case RoundHalfUp:
		return "half-up"
	case RoundHalfEven:
		return "half-even"
	default:
		return "truncate"
	}
}

// ParseRoundingMode accepts "truncate", "half-up" and "half-even".
func ParseRoundingMode(value string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "truncate", "trunc":
		return RoundTruncate, nil
	case "half-up", "halfup", "round":
		return RoundHalfUp, nil
	case "half-even", "halfeven", "bank", "bankers":
		return RoundHalfEven, nil
	default:
		return RoundTruncate, &ConfigError{Field: "rounding", Value: value, Reason: "unknown rounding mode"}
	}
}

// ClampMode selects when min/max are enforced.
type ClampMode int

const (
	// ClampOnBlur leaves out-of-range values alone until Commit.
	ClampOnBlur ClampMode = iota
	// ClampLive clamps after every accepted edit.
	ClampLive
)

// Config is the resolved input configuration. Build it with NewConfig; the
// zero value is not usable.
type Config struct {
	Prefix           string
	Suffix           string
	DecimalSeparator string
	GroupSeparator   string

	AllowDecimals          bool
	DecimalsLimit          int
	DecimalScale           *int
	FixedDecimalLength     *int
	AllowNegativeValue     bool
	DisableGroupSeparators bool
	DisableAbbreviations   bool
	// AbbreviationThreshold abbreviates the display of values at or above it.
	// Zero never abbreviates.
	AbbreviationThreshold decimal.Decimal
	Rounding              RoundingMode

	Min       *decimal.Decimal
	Max       *decimal.Decimal
	Step      decimal.Decimal
	MaxLength int
	ClampMode ClampMode

	FormatValueOnBlur bool
	TransformRawValue func(string) string

	Locale *LocaleConfig
	Rules  *RulesProvider
	Logger *slog.Logger

	prefixSet bool
	suffixSet bool
	limitSet  bool
	rulesFile string
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options and validates it once.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		AllowDecimals:      true,
		AllowNegativeValue: true,
		Step:               decimal.NewFromInt(1),
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.rulesFile != "" && cfg.Rules == nil {
		rules, err := LoadRules(cfg.rulesFile)
		if err != nil {
			return nil, err
		}
		cfg.Rules = rules
	}
	if cfg.Rules == nil {
		cfg.Rules = DefaultRules()
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	if err := cfg.applyLocale(); err != nil {
		return nil, err
	}
	cfg.applyLimitDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyLocale() error {
	seps, err := resolveSeparators(cfg.DecimalSeparator, cfg.GroupSeparator, cfg.Locale, cfg.Rules)
	if err != nil {
		return err
	}
	cfg.DecimalSeparator = seps.Decimal
	cfg.GroupSeparator = seps.Group

	if cfg.Locale == nil {
		return nil
	}

	format := ResolveLocaleWith(*cfg.Locale, cfg.Rules)
	if !cfg.prefixSet {
		cfg.Prefix = format.Prefix
	}
	if !cfg.suffixSet {
		cfg.Suffix = format.Suffix
	}
	return nil
}

// applyLimitDefaults caps typing at the display scale when no explicit limit was given.
func (cfg *Config) applyLimitDefaults() {
	if cfg.limitSet {
		return
	}
	switch {
	case cfg.DecimalScale != nil:
		cfg.DecimalsLimit = *cfg.DecimalScale
	case cfg.FixedDecimalLength != nil:
		cfg.DecimalsLimit = *cfg.FixedDecimalLength
	}
}

func (cfg *Config) validate() error {
	if cfg.DecimalScale != nil && *cfg.DecimalScale < 0 {
		return &ConfigError{Field: "decimalScale", Value: fmt.Sprint(*cfg.DecimalScale), Reason: "must not be negative"}
	}
	if cfg.FixedDecimalLength != nil && *cfg.FixedDecimalLength < 0 {
		return &ConfigError{Field: "fixedDecimalLength", Value: fmt.Sprint(*cfg.FixedDecimalLength), Reason: "must not be negative"}
	}
	// decimalsLimit may be derived from the two fields above, so it is checked after them.
	if cfg.DecimalsLimit < 0 {
		return &ConfigError{Field: "decimalsLimit", Value: fmt.Sprint(cfg.DecimalsLimit), Reason: "must not be negative"}
	}
	if cfg.DecimalScale != nil && cfg.limitSet && cfg.DecimalsLimit > 0 && *cfg.DecimalScale > cfg.DecimalsLimit {
		return &ConfigError{Field: "decimalScale", Value: fmt.Sprint(*cfg.DecimalScale), Reason: "exceeds decimalsLimit"}
	}
	if cfg.ClampMode == ClampLive && cfg.FormatValueOnBlur {
		return &ConfigError{Field: "clampMode", Value: "live", Reason: "formatValueOnBlur defers clamping to commit"}
	}
	if cfg.MaxLength < 0 {
		return &ConfigError{Field: "maxLength", Value: fmt.Sprint(cfg.MaxLength), Reason: "must not be negative"}
	}
	if cfg.Min != nil && cfg.Max != nil && cfg.Min.GreaterThan(*cfg.Max) {
		return &ConfigError{Field: "min", Value: cfg.Min.String(), Reason: "greater than max " + cfg.Max.String()}
	}
	if !cfg.Step.IsPositive() {
		return &ConfigError{Field: "step", Value: cfg.Step.String(), Reason: "must be positive"}
	}
	if cfg.AbbreviationThreshold.IsNegative() {
		return &ConfigError{Field: "abbreviationThreshold", Value: cfg.AbbreviationThreshold.String(), Reason: "must not be negative"}
	}
	for _, affix := range []struct{ name, value string }{{"prefix", cfg.Prefix}, {"suffix", cfg.Suffix}} {
		if strings.ContainsAny(affix.value, "0123456789") {
			return &ConfigError{Field: affix.name, Value: affix.value, Reason: "affix cannot contain digits"}
		}
	}
	return nil
}

// CleanOptions returns the cleaner view of the config.
func (cfg *Config) CleanOptions() CleanOptions {
	return CleanOptions{
		Prefix:               cfg.Prefix,
		Suffix:               cfg.Suffix,
		DecimalSeparator:     cfg.DecimalSeparator,
		GroupSeparator:       cfg.GroupSeparator,
		AllowDecimals:        cfg.AllowDecimals,
		DecimalsLimit:        cfg.DecimalsLimit,
		AllowNegativeValue:   cfg.AllowNegativeValue,
		DisableAbbreviations: cfg.DisableAbbreviations,
	}
}

// FormatOptions returns the formatter view of the config. Scale and
// abbreviation only apply to committed values; while typing the value is
// shown as typed.
func (cfg *Config) FormatOptions(committed bool) FormatOptions {
	opts := FormatOptions{
		Prefix:                 cfg.Prefix,
		Suffix:                 cfg.Suffix,
		DecimalSeparator:       cfg.DecimalSeparator,
		GroupSeparator:         cfg.GroupSeparator,
		DisableGroupSeparators: cfg.DisableGroupSeparators,
		Rounding:               cfg.Rounding,
	}
	if committed {
		opts.DecimalScale = cfg.scale()
		if !cfg.DisableAbbreviations {
			opts.AbbreviationThreshold = cfg.AbbreviationThreshold
		}
	}
	return opts
}

func (cfg *Config) scale() *int {
	if !cfg.AllowDecimals {
		zero := 0
		return &zero
	}
	if cfg.DecimalScale != nil {
		return cfg.DecimalScale
	}
	return cfg.FixedDecimalLength
}

func WithPrefix(prefix string) Option {
	return func(c *Config) error {
		c.Prefix = prefix
		c.prefixSet = true
		return nil
	}
}

func WithSuffix(suffix string) Option {
	return func(c *Config) error {
		c.Suffix = suffix
		c.suffixSet = true
		return nil
	}
}

func WithDecimalSeparator(sep string) Option {
	return func(c *Config) error {
		c.DecimalSeparator = sep
		return nil
	}
}

func WithGroupSeparator(sep string) Option {
	return func(c *Config) error {
		c.GroupSeparator = sep
		return nil
	}
}

func WithAllowDecimals(allow bool) Option {
	return func(c *Config) error {
		c.AllowDecimals = allow
		return nil
	}
}

// WithDecimalsLimit caps the fractional digits accepted while typing. Zero is unlimited.
func WithDecimalsLimit(limit int) Option {
	return func(c *Config) error {
		c.DecimalsLimit = limit
		c.limitSet = true
		return nil
	}
}

// WithDecimalScale pads or reduces committed values to exactly scale fractional digits.
func WithDecimalScale(scale int) Option {
	return func(c *Config) error {
		c.DecimalScale = &scale
		return nil
	}
}

// WithFixedDecimalLength fixes the fraction length; digits typed without a
// decimal separator get an implied one at commit.
func WithFixedDecimalLength(length int) Option {
	return func(c *Config) error {
		c.FixedDecimalLength = &length
		return nil
	}
}

func WithAllowNegativeValue(allow bool) Option {
	return func(c *Config) error {
		c.AllowNegativeValue = allow
		return nil
	}
}

func WithDisableGroupSeparators() Option {
	return func(c *Config) error {
		c.DisableGroupSeparators = true
		return nil
	}
}

func WithDisableAbbreviations() Option {
	return func(c *Config) error {
		c.DisableAbbreviations = true
		return nil
	}
}

func WithAbbreviationThreshold(threshold float64) Option {
	return func(c *Config) error {
		c.AbbreviationThreshold = decimal.NewFromFloat(threshold)
		return nil
	}
}

func WithRounding(mode RoundingMode) Option {
	return func(c *Config) error {
		c.Rounding = mode
		return nil
	}
}

func WithMin(min float64) Option {
	return func(c *Config) error {
		value := decimal.NewFromFloat(min)
		c.Min = &value
		return nil
	}
}

func WithMax(max float64) Option {
	return func(c *Config) error {
		value := decimal.NewFromFloat(max)
		c.Max = &value
		return nil
	}
}

func WithStep(step float64) Option {
	return func(c *Config) error {
		c.Step = decimal.NewFromFloat(step)
		return nil
	}
}

// WithMaxLength truncates display strings longer than length characters.
func WithMaxLength(length int) Option {
	return func(c *Config) error {
		c.MaxLength = length
		return nil
	}
}

func WithClampMode(mode ClampMode) Option {
	return func(c *Config) error {
		c.ClampMode = mode
		return nil
	}
}

// WithFormatValueOnBlur holds value emission until Commit.
func WithFormatValueOnBlur() Option {
	return func(c *Config) error {
		c.FormatValueOnBlur = true
		return nil
	}
}

// WithTransformRawValue installs a rewrite hook that runs before cleaning.
// Its output is validated like any other candidate.
func WithTransformRawValue(fn func(string) string) Option {
	return func(c *Config) error {
		c.TransformRawValue = fn
		return nil
	}
}

// WithLocale derives separators and currency affixes from locale.
func WithLocale(locale LocaleConfig) Option {
	return func(c *Config) error {
		if strings.TrimSpace(locale.Locale) == "" {
			return &ConfigError{Field: "locale", Reason: "locale is required"}
		}
		c.Locale = &locale
		return nil
	}
}

func WithRules(rules *RulesProvider) Option {
	return func(c *Config) error {
		c.Rules = rules
		return nil
	}
}

// WithRulesFile merges a JSON or YAML rules file over the embedded table.
func WithRulesFile(path string) Option {
	return func(c *Config) error {
		c.rulesFile = path
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}
