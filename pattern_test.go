package currencyinput

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func configFromPattern(t *testing.T, code string) *Config {
	t.Helper()
	opts, err := OptionsFromPattern(code)
	require.NoError(t, err)
	cfg, err := NewConfig(opts...)
	require.NoError(t, err)
	return cfg
}

func TestOptionsFromPatternPlaceholders(t *testing.T) {
	cfg := configFromPattern(t, "#,##0.00")
	require.Equal(t, "", cfg.Prefix)
	require.Equal(t, "", cfg.Suffix)
	require.False(t, cfg.DisableGroupSeparators)
	require.True(t, cfg.AllowDecimals)
	require.Equal(t, 2, cfg.DecimalsLimit)
	require.NotNil(t, cfg.DecimalScale)
	require.Equal(t, 2, *cfg.DecimalScale)
	require.False(t, cfg.AllowNegativeValue)

	cfg = configFromPattern(t, "0")
	require.True(t, cfg.DisableGroupSeparators)
	require.False(t, cfg.AllowDecimals)

	cfg = configFromPattern(t, "#,##0.0#")
	require.Equal(t, 2, cfg.DecimalsLimit)
	require.Equal(t, 1, *cfg.DecimalScale)

	cfg = configFromPattern(t, "#,##0.##")
	require.Equal(t, 2, cfg.DecimalsLimit)
	require.Nil(t, cfg.DecimalScale)
}

func TestOptionsFromPatternLiterals(t *testing.T) {
	cfg := configFromPattern(t, `"$"#,##0.00`)
	require.Equal(t, "$", cfg.Prefix)

	cfg = configFromPattern(t, `#,##0.000 "kg"`)
	require.Equal(t, "kg", strings.TrimSpace(cfg.Suffix))
	require.Equal(t, 3, *cfg.DecimalScale)

	cfg = configFromPattern(t, "0%")
	require.Equal(t, "%", cfg.Suffix)
	require.False(t, cfg.AllowDecimals)

	cfg = configFromPattern(t, `"$"#,##0.00;-"$"#,##0.00`)
	require.True(t, cfg.AllowNegativeValue)
	require.Equal(t, "$", cfg.Prefix)
}

func TestOptionsFromPatternDrivesInput(t *testing.T) {
	opts, err := OptionsFromPattern(`"$"#,##0.00`)
	require.NoError(t, err)
	in, err := NewInput(opts...)
	require.NoError(t, err)

	_, err = in.Edit("1234.5")
	require.NoError(t, err)
	values := in.Commit()
	require.Equal(t, "$1,234.50", values.Formatted)
	require.Equal(t, "1234.50", values.Value)
}

func TestOptionsFromPatternErrors(t *testing.T) {
	_, err := OptionsFromPattern("  ")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = OptionsFromPattern(`"text only"`)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPatternLiteral(t *testing.T) {
	require.Equal(t, "kg", patternLiteral(`"kg"`))
	require.Equal(t, "€", currencyLiteral(`[$€-407]`))
	require.Equal(t, "€", currencyLiteral(`€-407`))
	require.Equal(t, "CHF", currencyLiteral(`$CHF`))
	require.Equal(t, "x", patternLiteral(`\x`))
	require.Equal(t, " ", patternLiteral(" "))
}
