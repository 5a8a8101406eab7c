package currencyinput

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Values is what the input emits after every accepted change and on commit.
// Value is the canonical string, Formatted the display string and Float the
// parsed number, nil while Value is empty or transient ("-", ".").
type Values struct {
	Float     *float64 `json:"float"`
	Formatted string   `json:"formatted"`
	Value     string   `json:"value"`
}

// FloatValue returns the parsed number and whether there is one.
func (v Values) FloatValue() (float64, bool) {
	if v.Float == nil {
		return 0, false
	}
	return *v.Float, true
}

func (v Values) String() string {
	if v.Float == nil {
		return "float=null formatted=" + strconv.Quote(v.Formatted) + " value=" + strconv.Quote(v.Value)
	}
	return "float=" + strconv.FormatFloat(*v.Float, 'f', -1, 64) +
		" formatted=" + strconv.Quote(v.Formatted) + " value=" + strconv.Quote(v.Value)
}

// ParseCanonical parses a canonical numeric string. Transient and empty
// values report false.
func ParseCanonical(value string) (decimal.Decimal, bool) {
	switch value {
	case "", "-", ".", "-.":
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

func parseFloat(value string) *float64 {
	amount, ok := ParseCanonical(value)
	if !ok {
		return nil
	}
	f, _ := amount.Float64()
	return &f
}
