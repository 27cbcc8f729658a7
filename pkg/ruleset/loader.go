package ruleset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Load reads a rule table and registers it into reg. The table maps field
// names to lists of kinds and may be YAML or JSON:
//
//	title: [required, maxlength]
//	price: [required, positive]
//
// Fields are registered in sorted order. The whole table is checked before
// anything is registered. An empty document registers nothing.
func Load(r io.Reader, reg *Registry) error {
	var table map[string][]string
	if err := yaml.NewDecoder(r).Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(ErrInvalidRuleTable, err)
	}

	fields := make([]string, 0, len(table))
	for field := range table {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parsed := make([][]validator.Kind, len(fields))
	for i, field := range fields {
		if field == "" {
			return fmt.Errorf("%w: empty field name", ErrInvalidRuleTable)
		}
		for _, name := range table[field] {
			kind, err := validator.ParseKind(name)
			if err != nil {
				return fmt.Errorf("field %s: %w", field, err)
			}
			parsed[i] = append(parsed[i], kind)
		}
	}

	for i, field := range fields {
		for _, kind := range parsed[i] {
			reg.Register(field, kind)
		}
	}
	return nil
}

// LoadFile is Load reading from the named file.
func LoadFile(path string, reg *Registry) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open rule table: %w", err)
	}
	defer f.Close()

	return Load(f, reg)
}
