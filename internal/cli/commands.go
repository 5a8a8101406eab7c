package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	currencyinput "github.com/goliatone/go-currency-input"
	"github.com/goliatone/go-currency-input/playground"
	"github.com/spf13/cobra"
)

func newFormatCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "format <value>",
		Short: "Format a canonical value as a committed display string",
		Example: `  currency-input format 1234.5 --case basic
  currency-input format 1234.5 --locale de-DE --currency EUR`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.newInput()
			if err != nil {
				return err
			}
			return printValues(cmd.OutOrStdout(), in.SetValue(args[0]), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the value triple as JSON")
	return cmd
}

func newCleanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean <display>",
		Short: "Clean a display string into a canonical value",
		Example: `  currency-input clean '$1,234.56'
  currency-input clean '1.234,56 €' --locale de-DE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.newInput()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), currencyinput.CleanValue(args[0], in.Config().CleanOptions()))
			return nil
		},
	}
}

func newTypeCommand(a *app) *cobra.Command {
	var (
		paste    bool
		noCommit bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "type <keystrokes>",
		Short: "Replay keystrokes through the input and print every state",
		Long: `type feeds each character to the input as if it was typed at the end of
the field, printing the accepted state or the rejection reason, then commits.
With --paste the whole argument is pasted at once.`,
		Example: `  currency-input type 1234.567 --case basic
  currency-input type 'abc 123.456 def' --paste --case paste-test`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.newInput()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if paste {
				values, err := in.Paste(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "paste %q -> %s\n", args[0], values)
			} else {
				replay(out, in, args[0])
			}

			if noCommit {
				return nil
			}
			values := in.Commit()
			if asJSON {
				return printValues(out, values, true)
			}
			fmt.Fprintf(out, "commit -> %s\n", values)
			return nil
		},
	}
	cmd.Flags().BoolVar(&paste, "paste", false, "paste the argument instead of typing it")
	cmd.Flags().BoolVar(&noCommit, "no-commit", false, "stop before the blur commit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the committed value triple as JSON")
	return cmd
}

// replay types keys one by one, inserting each before the suffix the way a
// caret at the end of the number would.
func replay(out io.Writer, in *currencyinput.Input, keys string) {
	suffix := in.Config().Suffix
	for _, r := range keys {
		current := in.Values().Formatted
		candidate := string(r)
		if current != "" {
			candidate = strings.TrimSuffix(current, suffix) + string(r) + suffix
		}
		values, err := in.Edit(candidate)
		if err != nil {
			fmt.Fprintf(out, "key %q rejected: %v\n", r, err)
			continue
		}
		fmt.Fprintf(out, "key %q -> %s\n", r, values)
	}
}

func newCasesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List the demo cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.table()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range table.All() {
				fmt.Fprintf(out, "%-14s %-16s %s\n", c.ID, c.Title, c.Description)
			}
			return nil
		},
	}
}

func newPlayCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.table()
			if err != nil {
				return err
			}
			shared, err := a.sharedOptions()
			if err != nil {
				return err
			}
			model, err := playground.New(table.All(), shared...)
			if err != nil {
				return err
			}
			return playground.Run(model)
		},
	}
}

func printValues(out io.Writer, values currencyinput.Values, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(out, values.Formatted)
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return enc.Encode(values)
}
