package currencyinput

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Input is the per-field engine. It keeps the last accepted canonical value
// and display string; every event resolves synchronously. An Input is not
// safe for concurrent use.
type Input struct {
	cfg       *Config
	value     string
	formatted string
	pending   bool
}

// NewInput builds a Config from opts and returns an empty input.
func NewInput(opts ...Option) (*Input, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return NewInputWithConfig(cfg), nil
}

// NewInputWithConfig returns an empty input for an already validated config.
func NewInputWithConfig(cfg *Config) *Input {
	return &Input{cfg: cfg}
}

// Config returns the resolved configuration.
func (in *Input) Config() *Config {
	return in.cfg
}

// Values returns the current state.
func (in *Input) Values() Values {
	return Values{
		Float:     parseFloat(in.value),
		Formatted: in.formatted,
		Value:     in.value,
	}
}

// Pending reports whether an accepted edit is waiting for Commit before it is
// emitted. Only inputs configured with WithFormatValueOnBlur hold values back.
func (in *Input) Pending() bool {
	return in.pending
}

// Edit validates a typed candidate display string. On success the new state
// is returned; a candidate that fails shape validation returns an error
// wrapping ErrEditRejected and the previous state is kept.
func (in *Input) Edit(candidate string) (Values, error) {
	transformed := in.transform(candidate)

	normalized, err := normalizeCandidate(transformed, in.cfg)
	if err == nil {
		err = validateShape(normalized, in.cfg)
	}
	if err != nil {
		in.cfg.Logger.Debug("edit rejected", "candidate", candidate, "error", err)
		return in.Values(), err
	}

	return in.accept(CleanValue(transformed, in.cfg.CleanOptions()))
}

// Paste accepts free-form text such as "abc 123.456 def": everything that is
// not part of a number is dropped. Text without any digit is rejected.
func (in *Input) Paste(text string) (Values, error) {
	transformed := in.transform(text)
	if !strings.ContainsAny(transformed, "0123456789") {
		err := rejectf("pasted text has no digits")
		in.cfg.Logger.Debug("paste rejected", "text", text, "error", err)
		return in.Values(), err
	}
	return in.accept(CleanValue(transformed, in.cfg.CleanOptions()))
}

// Commit is the blur boundary: transient values clear, fixed decimals and
// scale apply, and the value is clamped into [min, max] in every clamp mode.
func (in *Input) Commit() Values {
	value := in.value
	switch value {
	case "", "-", ".", "-.":
		in.set("", "")
		in.pending = false
		return in.Values()
	}

	if in.cfg.FixedDecimalLength != nil {
		value = impliedDecimal(value, *in.cfg.FixedDecimalLength)
	}
	value = in.clamp(value)
	in.commitValue(value)
	return in.Values()
}

// Focus re-renders the committed value in its editable form, undoing display
// abbreviation.
func (in *Input) Focus() Values {
	if in.value == "" {
		return in.Values()
	}
	in.formatted = FormatValue(in.value, in.cfg.FormatOptions(false))
	return in.Values()
}

// SetValue replaces the state from outside, e.g. a bound model value. The
// value is cleaned without the typing limit so the configured rounding mode
// decides how surplus decimals are dropped, then committed.
func (in *Input) SetValue(value string) Values {
	opts := in.cfg.CleanOptions()
	opts.DecimalsLimit = 0
	opts.DecimalSeparator, opts.GroupSeparator = ".", ","
	opts.Prefix, opts.Suffix = "", ""

	cleaned := CleanValue(strings.TrimSpace(value), opts)
	if _, ok := ParseCanonical(cleaned); !ok {
		in.set("", "")
		in.pending = false
		return in.Values()
	}
	if limit := in.cfg.DecimalsLimit; limit > 0 && in.cfg.scale() == nil {
		if _, frac, _ := strings.Cut(cleaned, "."); len(frac) > limit {
			cleaned = fitScale(cleaned, limit, in.cfg.Rounding)
		}
	}
	in.commitValue(in.clamp(cleaned))
	return in.Values()
}

// SetFloat is SetValue for a number.
func (in *Input) SetFloat(value float64) Values {
	return in.SetValue(strconv.FormatFloat(value, 'f', -1, 64))
}

// Step adds n steps to the current value (arrow keys) using exact decimal
// arithmetic and clamps the result. An empty value steps from zero.
func (in *Input) Step(n int) Values {
	current, ok := ParseCanonical(in.value)
	if !ok {
		current = decimal.Zero
	}
	next := current.Add(in.cfg.Step.Mul(decimal.NewFromInt(int64(n))))
	if !in.cfg.AllowNegativeValue && next.IsNegative() {
		next = decimal.Zero
	}
	switch {
	case !in.cfg.AllowDecimals:
		next = next.Truncate(0)
	case in.cfg.DecimalsLimit > 0:
		next = next.Truncate(int32(in.cfg.DecimalsLimit))
	}

	value := in.clamp(next.String())
	in.set(value, FormatValue(value, in.cfg.FormatOptions(false)))
	in.pending = in.cfg.FormatValueOnBlur
	return in.Values()
}

func (in *Input) transform(raw string) string {
	if in.cfg.TransformRawValue == nil {
		return raw
	}
	return in.cfg.TransformRawValue(raw)
}

// accept runs a cleaned value through the clamp policy, formatting and the
// max length rule. The transform hook is untrusted, so the cleaned value is
// validated again before it replaces the state.
func (in *Input) accept(value string) (Values, error) {
	if err := validateShape(value, in.cfg); err != nil {
		in.cfg.Logger.Debug("cleaned value rejected", "value", value, "error", err)
		return in.Values(), err
	}

	if in.cfg.ClampMode == ClampLive {
		value = in.clamp(value)
	}

	opts := in.cfg.FormatOptions(false)
	formatted := FormatValue(value, opts)

	if limit := in.cfg.MaxLength; limit > 0 {
		for utf8.RuneCountInString(formatted) > limit && value != "" {
			truncated := string([]rune(formatted)[:limit])
			value = CleanValue(truncated, in.cfg.CleanOptions())
			formatted = FormatValue(value, opts)
			if utf8.RuneCountInString(formatted) > limit {
				limit--
			}
		}
		if in.cfg.ClampMode == ClampLive && in.clamp(value) != value {
			err := rejectf("value does not fit %d characters within bounds", in.cfg.MaxLength)
			in.cfg.Logger.Debug("edit rejected", "value", value, "error", err)
			return in.Values(), err
		}
	}

	in.set(value, formatted)
	in.pending = in.cfg.FormatValueOnBlur
	return in.Values(), nil
}

func (in *Input) commitValue(value string) {
	opts := in.cfg.FormatOptions(true)
	if opts.DecimalScale != nil {
		value = fitScale(value, *opts.DecimalScale, opts.Rounding)
	}
	in.set(value, FormatValue(value, opts))
	in.pending = false
}

// clamp constrains a canonical value into [min, max]. Transient values pass.
func (in *Input) clamp(value string) string {
	amount, ok := ParseCanonical(value)
	if !ok {
		return value
	}

	clamped := amount
	if in.cfg.Min != nil && clamped.LessThan(*in.cfg.Min) {
		clamped = *in.cfg.Min
	}
	if in.cfg.Max != nil && clamped.GreaterThan(*in.cfg.Max) {
		clamped = *in.cfg.Max
	}
	if clamped.Equal(amount) {
		return value
	}

	in.cfg.Logger.Debug("value clamped", "value", value, "clamped", clamped.String())
	return clamped.String()
}

func (in *Input) set(value, formatted string) {
	in.value = value
	in.formatted = formatted
}

// impliedDecimal places a decimal point length digits from the right when the
// user typed none: "12345" with length 2 becomes "123.45".
func impliedDecimal(value string, length int) string {
	if length == 0 {
		intPart, _, _ := strings.Cut(value, ".")
		return intPart
	}
	if strings.Contains(value, ".") {
		return value
	}

	sign := ""
	digits := value
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= length {
		return value
	}
	return sign + digits[:len(digits)-length] + "." + digits[len(digits)-length:]
}
