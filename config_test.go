package currencyinput

import (
	"errors"
	"log/slog"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DecimalSeparator != "." || cfg.GroupSeparator != "," {
		t.Fatalf("separators = %q/%q", cfg.DecimalSeparator, cfg.GroupSeparator)
	}
	if !cfg.AllowDecimals || !cfg.AllowNegativeValue {
		t.Fatalf("expected decimals and negatives to be allowed by default")
	}
	if cfg.DecimalsLimit != 0 || cfg.DecimalScale != nil {
		t.Fatalf("expected no decimal limit or scale, got %d/%v", cfg.DecimalsLimit, cfg.DecimalScale)
	}
	if cfg.Step.String() != "1" {
		t.Fatalf("Step = %s, want 1", cfg.Step)
	}
	if cfg.Rounding != RoundTruncate || cfg.ClampMode != ClampOnBlur {
		t.Fatalf("Rounding/ClampMode = %s/%d", cfg.Rounding, cfg.ClampMode)
	}
	if cfg.Rules == nil {
		t.Fatal("expected default rules")
	}
	if cfg.Logger == nil {
		t.Fatal("expected discard logger")
	}
}

func TestNewConfigLocale(t *testing.T) {
	cfg, err := NewConfig(WithLocale(LocaleConfig{Locale: "de-DE", Currency: "EUR"}))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DecimalSeparator != "," || cfg.GroupSeparator != "." {
		t.Fatalf("separators = %q/%q", cfg.DecimalSeparator, cfg.GroupSeparator)
	}
	if cfg.Prefix != "" || cfg.Suffix != " €" {
		t.Fatalf("affixes = %q/%q", cfg.Prefix, cfg.Suffix)
	}

	cfg, err = NewConfig(
		WithLocale(LocaleConfig{Locale: "de-DE", Currency: "EUR"}),
		WithPrefix("EUR "),
		WithSuffix(""),
		WithGroupSeparator(" "),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Prefix != "EUR " || cfg.Suffix != "" || cfg.GroupSeparator != " " || cfg.DecimalSeparator != "," {
		t.Fatalf("explicit values must win over the locale: %+v", cfg)
	}
}

func TestNewConfigLimitDefaults(t *testing.T) {
	cfg, err := NewConfig(WithDecimalScale(2))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DecimalsLimit != 2 {
		t.Fatalf("DecimalsLimit = %d, want the scale", cfg.DecimalsLimit)
	}

	cfg, err = NewConfig(WithFixedDecimalLength(3))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DecimalsLimit != 3 {
		t.Fatalf("DecimalsLimit = %d, want the fixed length", cfg.DecimalsLimit)
	}

	cfg, err = NewConfig(WithDecimalScale(2), WithDecimalsLimit(4))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DecimalsLimit != 4 {
		t.Fatalf("DecimalsLimit = %d, want the explicit limit", cfg.DecimalsLimit)
	}
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		field string
	}{
		{name: "equal separators", opts: []Option{WithDecimalSeparator(","), WithGroupSeparator(",")}, field: "decimalSeparator"},
		{name: "equal separators with grouping disabled", opts: []Option{WithDecimalSeparator("."), WithGroupSeparator("."), WithDisableGroupSeparators()}, field: "decimalSeparator"},
		{name: "negative limit", opts: []Option{WithDecimalsLimit(-1)}, field: "decimalsLimit"},
		{name: "negative scale", opts: []Option{WithDecimalScale(-2)}, field: "decimalScale"},
		{name: "scale above limit", opts: []Option{WithDecimalsLimit(1), WithDecimalScale(2)}, field: "decimalScale"},
		{name: "negative fixed length", opts: []Option{WithFixedDecimalLength(-1)}, field: "fixedDecimalLength"},
		{name: "live clamp with format on blur", opts: []Option{WithClampMode(ClampLive), WithFormatValueOnBlur()}, field: "clampMode"},
		{name: "negative max length", opts: []Option{WithMaxLength(-1)}, field: "maxLength"},
		{name: "min above max", opts: []Option{WithMin(10), WithMax(1)}, field: "min"},
		{name: "zero step", opts: []Option{WithStep(0)}, field: "step"},
		{name: "negative threshold", opts: []Option{WithAbbreviationThreshold(-1)}, field: "abbreviationThreshold"},
		{name: "digit prefix", opts: []Option{WithPrefix("1$")}, field: "prefix"},
		{name: "empty locale", opts: []Option{WithLocale(LocaleConfig{})}, field: "locale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opts...)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Fatalf("expected ConfigError on %q, got %v", tt.field, err)
			}
		})
	}
}

func TestNewConfigRulesFile(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
rules:
  xx:
    decimal_separator: "·"
    group_separator: "'"
    currency_pattern: "{amount}{symbol}"
    currency: USD
`)
	cfg, err := NewConfig(WithRulesFile(path), WithLocale(LocaleConfig{Locale: "xx", Currency: "auto"}))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.DecimalSeparator != "·" || cfg.GroupSeparator != "'" || cfg.Suffix != "$" {
		t.Fatalf("rules file not applied: %q %q %q", cfg.DecimalSeparator, cfg.GroupSeparator, cfg.Suffix)
	}

	if _, err := NewConfig(WithRulesFile(writeFile(t, "bad.toml", ""))); err == nil {
		t.Fatal("expected error for unsupported rules file")
	}
}

func TestConfigViews(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	cfg, err := NewConfig(
		WithPrefix("$"),
		WithDecimalScale(2),
		WithAbbreviationThreshold(1000),
		WithRounding(RoundHalfEven),
		WithLogger(logger),
	)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Logger != logger {
		t.Fatal("logger option ignored")
	}

	clean := cfg.CleanOptions()
	if clean.Prefix != "$" || clean.DecimalsLimit != 2 || !clean.AllowDecimals {
		t.Fatalf("CleanOptions = %+v", clean)
	}

	typing := cfg.FormatOptions(false)
	if typing.DecimalScale != nil || !typing.AbbreviationThreshold.IsZero() {
		t.Fatalf("typing view must not scale or abbreviate: %+v", typing)
	}

	committed := cfg.FormatOptions(true)
	if committed.DecimalScale == nil || *committed.DecimalScale != 2 || committed.Rounding != RoundHalfEven {
		t.Fatalf("committed view = %+v", committed)
	}
	if committed.AbbreviationThreshold.String() != "1000" {
		t.Fatalf("threshold = %s", committed.AbbreviationThreshold)
	}

	integer, _ := NewConfig(WithAllowDecimals(false))
	if scale := integer.FormatOptions(true).DecimalScale; scale == nil || *scale != 0 {
		t.Fatalf("integer inputs commit with scale 0, got %v", scale)
	}
}

func TestParseRoundingMode(t *testing.T) {
	tests := map[string]RoundingMode{
		"":          RoundTruncate,
		"truncate":  RoundTruncate,
		"HALF-UP":   RoundHalfUp,
		"half-even": RoundHalfEven,
		"bankers":   RoundHalfEven,
	}
	for in, want := range tests {
		got, err := ParseRoundingMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseRoundingMode(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := ParseRoundingMode("ceil"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
