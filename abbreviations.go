package currencyinput

import (
	"strings"

	"github.com/shopspring/decimal"
)

type abbreviation struct {
	letter   string
	exponent int32
}

// Ordered largest first so display picks the biggest unit that fits.
var abbreviations = []abbreviation{
	{letter: "b", exponent: 9},
	{letter: "m", exponent: 6},
	{letter: "k", exponent: 3},
}

func lookupAbbreviation(run string) (abbreviation, bool) {
	lowered := strings.ToLower(run)
	for _, abbr := range abbreviations {
		if lowered == abbr.letter {
			return abbr, true
		}
	}
	return abbreviation{}, false
}

// expandAbbreviation multiplies a canonical number by the abbreviation unit.
// "1.5" with k gives "1500".
func expandAbbreviation(number string, abbr abbreviation) string {
	value, err := decimal.NewFromString(number)
	if err != nil {
		return ""
	}
	return value.Shift(abbr.exponent).String()
}

// abbreviateDisplay renders |value| >= threshold as "1.2K". The fraction is
// truncated to one digit and dropped when zero.
func abbreviateDisplay(value, threshold decimal.Decimal, decimalSep string) (string, bool) {
	if !threshold.IsPositive() {
		return "", false
	}
	abs := value.Abs()
	if abs.LessThan(threshold) {
		return "", false
	}

	for _, abbr := range abbreviations {
		unit := decimal.New(1, abbr.exponent)
		if abs.LessThan(unit) {
			continue
		}
		scaled := abs.Shift(-abbr.exponent).Truncate(1)
		text := scaled.StringFixed(1)
		text = strings.TrimSuffix(text, ".0")
		text = strings.Replace(text, ".", decimalSep, 1)
		return text + strings.ToUpper(abbr.letter), true
	}
	return "", false
}
