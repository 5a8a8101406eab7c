package currencyinput

import (
	"testing"

	"github.com/shopspring/decimal"
)

func intPtr(v int) *int { return &v }

func TestFormatValue(t *testing.T) {
	german := FormatOptions{DecimalSeparator: ",", GroupSeparator: ".", Suffix: " €"}

	tests := []struct {
		name  string
		value string
		opts  FormatOptions
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "lone minus", value: "-", opts: FormatOptions{Prefix: "$"}, want: "-"},
		{name: "groups", value: "1234567.5", want: "1,234,567.5"},
		{name: "short integer", value: "123", want: "123"},
		{name: "trailing separator kept", value: "12.", want: "12."},
		{name: "leading point", value: ".5", want: "0.5"},
		{name: "sign before prefix", value: "-5", opts: FormatOptions{Prefix: "$"}, want: "-$5"},
		{name: "grouping disabled", value: "1234567", opts: FormatOptions{DisableGroupSeparators: true}, want: "1234567"},
		{name: "german", value: "1234.56", opts: german, want: "1.234,56 €"},
		{name: "german trailing separator", value: "1234.", opts: german, want: "1.234, €"},
		{name: "pad scale", value: "5", opts: FormatOptions{DecimalScale: intPtr(2)}, want: "5.00"},
		{name: "pad short fraction", value: "5.1", opts: FormatOptions{DecimalScale: intPtr(2)}, want: "5.10"},
		{name: "scale zero", value: "1234.99", opts: FormatOptions{DecimalScale: intPtr(0)}, want: "1,234"},
		{name: "leading zeros", value: "0012", want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value, tt.opts); got != tt.want {
				t.Fatalf("FormatValue(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatValueRounding(t *testing.T) {
	tests := []struct {
		value string
		mode  RoundingMode
		want  string
	}{
		{value: "1.999", mode: RoundTruncate, want: "1.99"},
		{value: "1.995", mode: RoundHalfUp, want: "2.00"},
		{value: "1.994", mode: RoundHalfUp, want: "1.99"},
		{value: "2.345", mode: RoundHalfEven, want: "2.34"},
		{value: "2.355", mode: RoundHalfEven, want: "2.36"},
		{value: "-1.999", mode: RoundTruncate, want: "-1.99"},
		{value: "999.999", mode: RoundHalfUp, want: "1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.value, func(t *testing.T) {
			opts := FormatOptions{DecimalScale: intPtr(2), Rounding: tt.mode}
			if got := FormatValue(tt.value, opts); got != tt.want {
				t.Fatalf("FormatValue(%q, %s) = %q, want %q", tt.value, tt.mode, got, tt.want)
			}
		})
	}
}

func TestFormatValueAbbreviations(t *testing.T) {
	threshold := decimal.NewFromInt(1000)

	tests := []struct {
		value string
		opts  FormatOptions
		want  string
	}{
		{value: "999", want: "999"},
		{value: "1234", want: "1.2K"},
		{value: "1000", want: "1K"},
		{value: "1500000", want: "1.5M"},
		{value: "5000000000", want: "5B"},
		{value: "-2500", want: "-2.5K"},
		{value: "1234", opts: FormatOptions{Prefix: "$"}, want: "$1.2K"},
		{value: "1234", opts: FormatOptions{DecimalSeparator: ",", GroupSeparator: "."}, want: "1,2K"},
	}

	for _, tt := range tests {
		opts := tt.opts
		opts.AbbreviationThreshold = threshold
		if got := FormatValue(tt.value, opts); got != tt.want {
			t.Fatalf("FormatValue(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"1":       "1",
		"123":     "123",
		"1234":    "1 234",
		"123456":  "123 456",
		"1234567": "1 234 567",
	}
	for in, want := range tests {
		if got := groupDigits(in, " "); got != want {
			t.Fatalf("groupDigits(%q) = %q, want %q", in, got, want)
		}
	}
}
