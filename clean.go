package currencyinput

import (
	"regexp"
	"strings"
)

// CleanOptions configures CleanValue. Empty separators mean "." and ",".
// Note the zero value disallows decimals and negatives; Config.CleanOptions
// carries the documented defaults.
type CleanOptions struct {
	Prefix               string
	Suffix               string
	DecimalSeparator     string
	GroupSeparator       string
	AllowDecimals        bool
	DecimalsLimit        int
	AllowNegativeValue   bool
	DisableAbbreviations bool
}

func (o CleanOptions) separators() (decimalSep, groupSep string) {
	decimalSep, groupSep = o.DecimalSeparator, o.GroupSeparator
	if decimalSep == "" {
		decimalSep = defaultDecimalSeparator
	}
	if groupSep == "" {
		groupSep = defaultGroupSeparator
	}
	return decimalSep, groupSep
}

// CleanValue turns a display string into a canonical numeric string: "."
// as decimal point, an optional leading "-", no separators or affixes.
// It never fails; text without digits cleans to "". A lone "-" or "." is
// returned as the transient state of a user who is still typing.
func CleanValue(value string, opts CleanOptions) string {
	decimalSep, groupSep := opts.separators()

	trimmed := strings.TrimSpace(value)
	if trimmed == "-" {
		if opts.AllowNegativeValue {
			return "-"
		}
		return ""
	}

	negative := isNegative(value, opts.Prefix, decimalSep)

	rest := value
	if opts.Prefix != "" {
		rest = strings.Replace(rest, opts.Prefix, "", 1)
	}
	if opts.Suffix != "" {
		if idx := strings.LastIndex(rest, opts.Suffix); idx >= 0 {
			rest = rest[:idx] + rest[idx+len(opts.Suffix):]
		}
	}

	var abbr *abbreviation
	if suffix, ok := detectSuffix(rest, decimalSep, groupSep); ok {
		rest = strings.TrimSuffix(rest, suffix)
		if !opts.DisableAbbreviations {
			if found, ok := lookupAbbreviation(suffix); ok {
				abbr = &found
			}
		}
	}

	if !opts.DisableAbbreviations && !strings.ContainsAny(rest, "0123456789") {
		// a bare abbreviation letter is not a number
		if _, ok := lookupAbbreviation(strings.TrimSpace(strings.ReplaceAll(rest, decimalSep, ""))); ok {
			return ""
		}
	}

	rest = strings.ReplaceAll(rest, groupSep, "")
	if decimalSep != "." {
		rest = strings.ReplaceAll(rest, ".", "")
		rest = strings.ReplaceAll(rest, decimalSep, ".")
	}

	intPart, fracPart, hasPoint := splitDigits(rest)

	if abbr != nil && (intPart != "" || fracPart != "") {
		number := intPart
		if fracPart != "" {
			number += "." + fracPart
		}
		if number == "" {
			number = "0"
		}
		expanded := expandAbbreviation(number, *abbr)
		intPart, fracPart, hasPoint = splitDigits(expanded)
	}

	if !opts.AllowDecimals {
		fracPart, hasPoint = "", false
	}
	if opts.DecimalsLimit > 0 && len(fracPart) > opts.DecimalsLimit {
		fracPart = fracPart[:opts.DecimalsLimit]
	}

	intPart = trimLeadingZeros(intPart)
	if intPart == "" && fracPart != "" {
		intPart = "0"
	}

	var b strings.Builder
	if negative && opts.AllowNegativeValue {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if hasPoint {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}

	out := b.String()
	if out == "-" && !opts.AllowNegativeValue {
		return ""
	}
	return out
}

// splitDigits keeps ASCII digits and the first ".", dropping every other rune.
// Later points are discarded, which protects against malformed paste input.
func splitDigits(value string) (intPart, fracPart string, hasPoint bool) {
	var intB, fracB strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			if hasPoint {
				fracB.WriteRune(r)
			} else {
				intB.WriteRune(r)
			}
		case r == '.':
			hasPoint = true
		}
	}
	return intB.String(), fracB.String(), hasPoint
}

func trimLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" && digits != "" {
		return "0"
	}
	return trimmed
}

// isNegative reports a "-" placed directly before a digit, the decimal
// separator or the prefix, and not preceded by a digit.
func isNegative(value, prefix, decimalSep string) bool {
	pattern := `(^|\D)-(\d|` + regexp.QuoteMeta(decimalSep) + `)`
	if prefix != "" {
		pattern += `|-` + regexp.QuoteMeta(prefix)
	}
	return regexp.MustCompile(pattern).MatchString(value)
}

// detectSuffix finds the trailing run of characters after the last digit that
// are neither digits nor separators, e.g. " €" in "1.234,56 €".
func detectSuffix(value, decimalSep, groupSep string) (string, bool) {
	re := regexp.MustCompile(`\d([^` + escapeClass(groupSep+decimalSep) + `0-9]+)$`)
	match := re.FindStringSubmatch(value)
	if match == nil {
		return "", false
	}
	return match[1], true
}

func escapeClass(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		if strings.ContainsRune(`\]^-[`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
