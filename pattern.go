package currencyinput

import (
	"strings"

	"github.com/xuri/nfp"
)

// OptionsFromPattern derives options from a spreadsheet number format code
// such as `"$"#,##0.00`, `#,##0.000 "kg"` or `0%`. Literals before the digit
// placeholders become the prefix and literals after them the suffix. Zero
// placeholders after the decimal point set the committed scale; zeros plus
// hashes set the typing limit. A second section enables negative values.
func OptionsFromPattern(code string) ([]Option, error) {
	if strings.TrimSpace(code) == "" {
		return nil, &ConfigError{Field: "pattern", Reason: "format code is empty"}
	}

	ps := nfp.NumberFormatParser()
	sections := ps.Parse(code)
	if len(sections) == 0 {
		return nil, &ConfigError{Field: "pattern", Value: code, Reason: "no sections"}
	}

	var (
		prefix, suffix strings.Builder
		seenDigits     bool
		hasThousands   bool
		hasDecimal     bool
		afterDecimal   bool
		decZeros       int
		decHashes      int
	)
	for _, tok := range sections[0].Items {
		switch tok.TType {
		case nfp.TokenTypeZeroPlaceHolder, nfp.TokenTypeHashPlaceHolder:
			seenDigits = true
			if afterDecimal {
				if tok.TType == nfp.TokenTypeZeroPlaceHolder {
					decZeros += len(tok.TValue)
				} else {
					decHashes += len(tok.TValue)
				}
			}
		case nfp.TokenTypeThousandsSeparator:
			hasThousands = true
		case nfp.TokenTypeDecimalPoint:
			hasDecimal = true
			afterDecimal = true
			seenDigits = true
		case nfp.TokenTypePercent:
			suffix.WriteString("%")
		case nfp.TokenTypeLiteral, nfp.TokenTypeCurrencyLanguage:
			text := patternLiteral(tok.TValue)
			if tok.TType == nfp.TokenTypeCurrencyLanguage {
				text = currencyLiteral(tok.TValue)
			}
			if text == "" || text == "-" || text == "+" {
				continue
			}
			if seenDigits {
				suffix.WriteString(text)
			} else {
				prefix.WriteString(text)
			}
		}
	}

	if !seenDigits {
		return nil, &ConfigError{Field: "pattern", Value: code, Reason: "no digit placeholders"}
	}

	opts := []Option{
		WithPrefix(prefix.String()),
		WithSuffix(suffix.String()),
		WithAllowNegativeValue(len(sections) > 1),
	}
	if !hasThousands {
		opts = append(opts, WithDisableGroupSeparators())
	}
	switch {
	case !hasDecimal || decZeros+decHashes == 0:
		opts = append(opts, WithAllowDecimals(false))
	default:
		opts = append(opts, WithDecimalsLimit(decZeros+decHashes))
		if decZeros > 0 {
			opts = append(opts, WithDecimalScale(decZeros))
		}
	}
	return opts, nil
}

// patternLiteral unwraps quoted text and escaped characters.
func patternLiteral(value string) string {
	value = strings.TrimPrefix(value, `\`)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return value
}

// currencyLiteral extracts the symbol of a [$€-407] block.
func currencyLiteral(value string) string {
	value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	value = strings.TrimPrefix(value, "$")
	if idx := strings.LastIndex(value, "-"); idx >= 0 {
		value = value[:idx]
	}
	return value
}
