package currencyinput

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatOptions configures FormatValue. Empty separators mean "." and ",".
type FormatOptions struct {
	Prefix                 string
	Suffix                 string
	DecimalSeparator       string
	GroupSeparator         string
	DisableGroupSeparators bool
	// DecimalScale, when set, fits the fraction to exactly this many digits.
	DecimalScale *int
	Rounding     RoundingMode
	// AbbreviationThreshold abbreviates values at or above it ("1.2K"). Zero disables.
	AbbreviationThreshold decimal.Decimal
}

// FormatValue renders a canonical numeric string for display. A lone "-"
// stays "-" and a trailing decimal point is kept so partially typed values
// survive a re-render.
func FormatValue(value string, opts FormatOptions) string {
	decimalSep, groupSep := opts.DecimalSeparator, opts.GroupSeparator
	if decimalSep == "" {
		decimalSep = defaultDecimalSeparator
	}
	if groupSep == "" {
		groupSep = defaultGroupSeparator
	}

	switch value {
	case "":
		return ""
	case "-":
		return "-"
	}

	if opts.DecimalScale != nil {
		value = fitScale(value, *opts.DecimalScale, opts.Rounding)
	}

	negative := strings.HasPrefix(value, "-")
	intPart, fracPart, hasPoint := splitDigits(strings.TrimPrefix(value, "-"))
	intPart = trimLeadingZeros(intPart)
	if intPart == "" {
		intPart = "0"
	}

	sign := ""
	if negative {
		sign = "-"
	}

	if opts.AbbreviationThreshold.IsPositive() {
		number := intPart
		if fracPart != "" {
			number += "." + fracPart
		}
		if amount, err := decimal.NewFromString(number); err == nil {
			if short, ok := abbreviateDisplay(amount, opts.AbbreviationThreshold, decimalSep); ok {
				return sign + opts.Prefix + short + opts.Suffix
			}
		}
	}

	if !opts.DisableGroupSeparators {
		intPart = groupDigits(intPart, groupSep)
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(opts.Prefix)
	b.WriteString(intPart)
	if hasPoint {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	b.WriteString(opts.Suffix)
	return b.String()
}

// groupDigits inserts sep every three digits from the right.
func groupDigits(integerPart, sep string) string {
	if len(integerPart) <= 3 || sep == "" {
		return integerPart
	}
	var result strings.Builder
	for i, digit := range integerPart {
		if i > 0 && (len(integerPart)-i)%3 == 0 {
			result.WriteString(sep)
		}
		result.WriteRune(digit)
	}
	return result.String()
}

// fitScale pads or reduces the fraction of a canonical value to scale digits.
// Transient values ("", "-", ".") are returned unchanged.
func fitScale(value string, scale int, mode RoundingMode) string {
	negative := strings.HasPrefix(value, "-")
	intPart, fracPart, _ := splitDigits(strings.TrimPrefix(value, "-"))
	if intPart == "" && fracPart == "" {
		return value
	}
	if intPart == "" {
		intPart = "0"
	}

	if len(fracPart) > scale {
		amount, err := decimal.NewFromString(intPart + "." + fracPart)
		if err != nil {
			return value
		}
		switch mode {
		case RoundHalfUp:
			amount = amount.Round(int32(scale))
		case RoundHalfEven:
			amount = amount.RoundBank(int32(scale))
		default:
			amount = amount.Truncate(int32(scale))
		}
		intPart, fracPart, _ = splitDigits(amount.StringFixed(int32(scale)))
	}
	for len(fracPart) < scale {
		fracPart += "0"
	}

	out := trimLeadingZeros(intPart)
	if scale > 0 {
		out += "." + fracPart
	}
	if negative {
		out = "-" + out
	}
	return out
}
