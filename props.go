package currencyinput

// MoneyInputProps is the prop set of the simple money input component.
// Value and InputString describe the bound model; they are applied with
// Input.SetValue rather than through options.
type MoneyInputProps struct {
	Value          *float64 `json:"value" yaml:"value"`
	InputString    string   `json:"inputString" yaml:"inputString"`
	CurrencySymbol string   `json:"currencySymbol" yaml:"currencySymbol"`
	DecimalPlaces  int      `json:"decimalPlaces" yaml:"decimalPlaces"`
	CanBeNegative  bool     `json:"canBeNegative" yaml:"canBeNegative"`
	Max            *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Min            *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Step           *float64 `json:"step,omitempty" yaml:"step,omitempty"`
}

// CaseProps is the reduced prop set used by demo cases.
type CaseProps struct {
	CurrencySymbol string   `json:"currencySymbol" yaml:"currencySymbol"`
	DecimalPlaces  int      `json:"decimalPlaces" yaml:"decimalPlaces"`
	CanBeNegative  bool     `json:"canBeNegative" yaml:"canBeNegative"`
	Min            *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max            *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// FromMoneyInputProps maps money input props onto options. decimalPlaces
// both limits typing and pads the committed value; zero disables decimals.
// The currency symbol is rendered as a prefix.
func FromMoneyInputProps(props MoneyInputProps) []Option {
	opts := FromCaseProps(CaseProps{
		CurrencySymbol: props.CurrencySymbol,
		DecimalPlaces:  props.DecimalPlaces,
		CanBeNegative:  props.CanBeNegative,
		Min:            props.Min,
		Max:            props.Max,
	})
	if props.Step != nil {
		opts = append(opts, WithStep(*props.Step))
	}
	return opts
}

// FromCaseProps maps case props onto options.
func FromCaseProps(props CaseProps) []Option {
	opts := []Option{
		WithPrefix(props.CurrencySymbol),
		WithAllowNegativeValue(props.CanBeNegative),
	}
	if props.DecimalPlaces > 0 {
		opts = append(opts,
			WithDecimalsLimit(props.DecimalPlaces),
			WithDecimalScale(props.DecimalPlaces),
		)
	} else {
		opts = append(opts, WithAllowDecimals(false))
	}
	if props.Min != nil {
		opts = append(opts, WithMin(*props.Min))
	}
	if props.Max != nil {
		opts = append(opts, WithMax(*props.Max))
	}
	return opts
}

// CurrencyInputProps mirrors the full currency input prop set. Nil fields
// keep the Config defaults.
type CurrencyInputProps struct {
	Value                  *string       `json:"value,omitempty"`
	IntlConfig             *LocaleConfig `json:"intlConfig,omitempty"`
	Prefix                 *string       `json:"prefix,omitempty"`
	Suffix                 *string       `json:"suffix,omitempty"`
	DecimalSeparator       *string       `json:"decimalSeparator,omitempty"`
	GroupSeparator         *string       `json:"groupSeparator,omitempty"`
	AllowDecimals          *bool         `json:"allowDecimals,omitempty"`
	DecimalsLimit          *int          `json:"decimalsLimit,omitempty"`
	DecimalScale           *int          `json:"decimalScale,omitempty"`
	FixedDecimalLength     *int          `json:"fixedDecimalLength,omitempty"`
	AllowNegativeValue     *bool         `json:"allowNegativeValue,omitempty"`
	Min                    *float64      `json:"min,omitempty"`
	Max                    *float64      `json:"max,omitempty"`
	MaxLength              *int          `json:"maxLength,omitempty"`
	Step                   *float64      `json:"step,omitempty"`
	DisableGroupSeparators bool          `json:"disableGroupSeparators,omitempty"`
	DisableAbbreviations   bool          `json:"disableAbbreviations,omitempty"`
	FormatValueOnBlur      bool          `json:"formatValueOnBlur,omitempty"`

	TransformRawValue func(string) string `json:"-"`
}

// Options converts the props into options for NewConfig.
func (p CurrencyInputProps) Options() []Option {
	var opts []Option
	if p.IntlConfig != nil {
		opts = append(opts, WithLocale(*p.IntlConfig))
	}
	if p.Prefix != nil {
		opts = append(opts, WithPrefix(*p.Prefix))
	}
	if p.Suffix != nil {
		opts = append(opts, WithSuffix(*p.Suffix))
	}
	if p.DecimalSeparator != nil {
		opts = append(opts, WithDecimalSeparator(*p.DecimalSeparator))
	}
	if p.GroupSeparator != nil {
		opts = append(opts, WithGroupSeparator(*p.GroupSeparator))
	}
	if p.AllowDecimals != nil {
		opts = append(opts, WithAllowDecimals(*p.AllowDecimals))
	}
	if p.DecimalsLimit != nil {
		opts = append(opts, WithDecimalsLimit(*p.DecimalsLimit))
	}
	if p.DecimalScale != nil {
		opts = append(opts, WithDecimalScale(*p.DecimalScale))
	}
	if p.FixedDecimalLength != nil {
		opts = append(opts, WithFixedDecimalLength(*p.FixedDecimalLength))
	}
	if p.AllowNegativeValue != nil {
		opts = append(opts, WithAllowNegativeValue(*p.AllowNegativeValue))
	}
	if p.Min != nil {
		opts = append(opts, WithMin(*p.Min))
	}
	if p.Max != nil {
		opts = append(opts, WithMax(*p.Max))
	}
	if p.MaxLength != nil {
		opts = append(opts, WithMaxLength(*p.MaxLength))
	}
	if p.Step != nil {
		opts = append(opts, WithStep(*p.Step))
	}
	if p.DisableGroupSeparators {
		opts = append(opts, WithDisableGroupSeparators())
	}
	if p.DisableAbbreviations {
		opts = append(opts, WithDisableAbbreviations())
	}
	if p.FormatValueOnBlur {
		opts = append(opts, WithFormatValueOnBlur())
	}
	if p.TransformRawValue != nil {
		opts = append(opts, WithTransformRawValue(p.TransformRawValue))
	}
	return opts
}
