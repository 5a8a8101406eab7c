// Package cases holds the table of demo input configurations used by the
// playground and the CLI.
package cases

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	currencyinput "github.com/goliatone/go-currency-input"
	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var defaultCasesYAML []byte

// Case is one named input configuration.
type Case struct {
	ID          string                  `yaml:"id" json:"id"`
	Title       string                  `yaml:"title" json:"title"`
	Description string                  `yaml:"description" json:"description"`
	Props       currencyinput.CaseProps `yaml:"props" json:"props"`
}

// Options returns the input options for the case.
func (c Case) Options() []currencyinput.Option {
	return currencyinput.FromCaseProps(c.Props)
}

// NewInput builds an input configured for the case. Extra options are
// applied after the case options.
func (c Case) NewInput(extra ...currencyinput.Option) (*currencyinput.Input, error) {
	opts := append(c.Options(), extra...)
	return currencyinput.NewInput(opts...)
}

// Table is an ordered case collection.
type Table struct {
	cases []Case
	byID  map[string]int
}

type document struct {
	Cases []Case `yaml:"cases"`
}

// Default returns the embedded case table.
func Default() *Table {
	table, err := Parse(defaultCasesYAML)
	if err != nil {
		panic(fmt.Errorf("cases: embedded table: %w", err))
	}
	return table
}

// Load reads a case table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cases: read %q: %w", path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cases: %q: %w", path, err)
	}
	return table, nil
}

// Parse decodes a YAML case table. Case ids must be present and unique.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}

	table := &Table{byID: make(map[string]int, len(doc.Cases))}
	for _, c := range doc.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case %q has no id", c.Title)
		}
		if _, exists := table.byID[c.ID]; exists {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		if c.Props.DecimalPlaces < 0 {
			return nil, fmt.Errorf("case %q: decimalPlaces must not be negative", c.ID)
		}
		table.byID[c.ID] = len(table.cases)
		table.cases = append(table.cases, c)
	}
	return table, nil
}

// All returns the cases in table order.
func (t *Table) All() []Case {
	out := make([]Case, len(t.cases))
	copy(out, t.cases)
	return out
}

// Get returns the case with the given id.
func (t *Table) Get(id string) (Case, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return Case{}, false
	}
	return t.cases[idx], true
}

// IDs returns the case ids sorted alphabetically.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.cases))
	for _, c := range t.cases {
		ids = append(ids, c.ID)
	}
	sort.Strings(ids)
	return ids
}
