// Package cli implements the currency-input command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	currencyinput "github.com/goliatone/go-currency-input"
	"github.com/goliatone/go-currency-input/cases"
	"github.com/goliatone/go-currency-input/internal/logging"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

type app struct {
	locale    string
	currency  string
	caseID    string
	casesFile string
	pattern   string
	rounding  string
	rulesFile string
	logLevel  string
	logFormat string

	logger *slog.Logger
}

// NewRootCommand builds the command tree writing to out and logging to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "currency-input",
		Short: "Format, clean and replay money input values",
		Long: `currency-input runs the money input engine from the command line:
format canonical values, clean display strings, replay keystrokes or open
an interactive playground with the demo cases.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.Setup(errOut, a.logLevel, a.logFormat)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.locale, "locale", "l", "", "locale tag used for separators and currency affixes (e.g. de-DE)")
	flags.StringVarP(&a.currency, "currency", "c", "", "ISO 4217 currency code rendered as prefix or suffix, or auto for the locale default")
	flags.StringVar(&a.caseID, "case", "", "demo case id to configure the input with")
	flags.StringVar(&a.casesFile, "cases-file", "", "YAML file replacing the embedded demo cases")
	flags.StringVarP(&a.pattern, "pattern", "p", "", `spreadsheet format code (e.g. "$"#,##0.00)`)
	flags.StringVar(&a.rounding, "rounding", "truncate", "rounding mode when the scale drops digits: truncate, half-up, half-even")
	flags.StringVar(&a.rulesFile, "rules", "", "JSON or YAML locale rules merged over the embedded table")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "text", "log format: text, json")

	root.AddCommand(
		newFormatCommand(a),
		newCleanCommand(a),
		newTypeCommand(a),
		newCasesCommand(a),
		newPlayCommand(a),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "currency-input: %v\n", err)
}

func (a *app) table() (*cases.Table, error) {
	if a.casesFile == "" {
		return cases.Default(), nil
	}
	return cases.Load(a.casesFile)
}

// options assembles the input options from the global flags. Case options
// come first so pattern and locale flags can refine them.
func (a *app) options() ([]currencyinput.Option, error) {
	var opts []currencyinput.Option

	if a.caseID != "" {
		table, err := a.table()
		if err != nil {
			return nil, err
		}
		c, ok := table.Get(a.caseID)
		if !ok {
			return nil, fmt.Errorf("unknown case %q", a.caseID)
		}
		opts = append(opts, c.Options()...)
	}

	shared, err := a.sharedOptions()
	if err != nil {
		return nil, err
	}
	return append(opts, shared...), nil
}

// sharedOptions are the flag options that apply on top of any case.
func (a *app) sharedOptions() ([]currencyinput.Option, error) {
	var opts []currencyinput.Option

	if a.pattern != "" {
		patternOpts, err := currencyinput.OptionsFromPattern(a.pattern)
		if err != nil {
			return nil, err
		}
		opts = append(opts, patternOpts...)
	}

	if a.locale != "" {
		opts = append(opts, currencyinput.WithLocale(currencyinput.LocaleConfig{
			Locale:   a.locale,
			Currency: a.currency,
		}))
	} else if a.currency != "" {
		return nil, fmt.Errorf("--currency requires --locale")
	}

	mode, err := currencyinput.ParseRoundingMode(a.rounding)
	if err != nil {
		return nil, err
	}
	opts = append(opts, currencyinput.WithRounding(mode))

	if a.rulesFile != "" {
		opts = append(opts, currencyinput.WithRulesFile(a.rulesFile))
	}
	if a.logger != nil {
		opts = append(opts, currencyinput.WithLogger(a.logger))
	}
	return opts, nil
}

func (a *app) newInput(extra ...currencyinput.Option) (*currencyinput.Input, error) {
	opts, err := a.options()
	if err != nil {
		return nil, err
	}
	return currencyinput.NewInput(append(opts, extra...)...)
}
