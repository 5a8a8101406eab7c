package currencyinput

import (
	"strings"
	"unicode"
)

// normalizeCandidate strips affixes and group separators from a typed
// candidate and swaps the decimal separator for ".", keeping every other rune
// so validateShape can see what the user actually typed. A "." that is
// neither separator is rejected rather than silently dropped.
func normalizeCandidate(candidate string, cfg *Config) (string, error) {
	rest := strings.TrimSpace(candidate)
	if cfg.Prefix != "" {
		rest = strings.Replace(rest, strings.TrimSpace(cfg.Prefix), "", 1)
	}
	if suffix := strings.TrimSpace(cfg.Suffix); suffix != "" {
		if idx := strings.LastIndex(rest, suffix); idx >= 0 {
			rest = rest[:idx] + rest[idx+len(suffix):]
		}
	}
	if cfg.GroupSeparator != "" {
		rest = strings.ReplaceAll(rest, cfg.GroupSeparator, "")
	}
	if cfg.DecimalSeparator != "." {
		if strings.Contains(rest, ".") {
			return "", rejectf("unexpected character %q", '.')
		}
		rest = strings.ReplaceAll(rest, cfg.DecimalSeparator, ".")
	}
	return strings.TrimSpace(rest), nil
}

// validateShape accepts digits, at most one leading "-" (when negatives are
// allowed), at most one "." (when decimals are allowed) followed by no more
// than DecimalsLimit digits, and optionally one trailing abbreviation letter.
func validateShape(raw string, cfg *Config) error {
	if raw == "" {
		return nil
	}

	body := raw
	if !cfg.DisableAbbreviations && len(body) > 1 {
		if _, ok := lookupAbbreviation(body[len(body)-1:]); ok {
			body = body[:len(body)-1]
		}
	}

	if strings.HasPrefix(body, "-") {
		if !cfg.AllowNegativeValue {
			return rejectf("negative values are not allowed")
		}
		body = body[1:]
	}
	if strings.Contains(body, "-") {
		return rejectf("minus sign must lead the value")
	}

	if strings.Count(body, ".") > 1 {
		return rejectf("more than one decimal separator")
	}
	intPart, fracPart, hasPoint := strings.Cut(body, ".")
	if hasPoint && !cfg.AllowDecimals {
		return rejectf("decimals are not allowed")
	}
	for _, part := range []string{intPart, fracPart} {
		if idx := strings.IndexFunc(part, func(r rune) bool { return r < '0' || r > '9' }); idx >= 0 {
			r := []rune(part[idx:])[0]
			if unicode.IsSpace(r) {
				return rejectf("unexpected whitespace")
			}
			return rejectf("unexpected character %q", r)
		}
	}
	if cfg.DecimalsLimit > 0 && len(fracPart) > cfg.DecimalsLimit {
		return rejectf("more than %d decimal places", cfg.DecimalsLimit)
	}
	return nil
}
