// Package report resolves the report definition: which columns to group and
// fold, and with which operator. A definition can come from a YAML file or
// fall back to the built-in category-totals default.
package report

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tally-lab/project-tally/internal/core/aggregation"
)

// Definition is one resolved report: exactly one grouping column, one value
// column, and one operator per run.
type Definition struct {
	Name           string
	CategoryColumn string
	ValueColumn    string
	Operator       string
	Fingerprint    string // SHA-256 of the raw YAML file; empty for the built-in default
}

// rawDefinition is the on-disk YAML shape. All fields are optional; omitted
// ones keep the default.
type rawDefinition struct {
	Name           string `yaml:"name"`
	CategoryColumn string `yaml:"category_column"`
	ValueColumn    string `yaml:"value_column"`
	Operator       string `yaml:"operator"`
}

// Default returns the built-in definition: sum of Value grouped by Category.
func Default() Definition {
	return Definition{
		Name:           "category-totals",
		CategoryColumn: "Category",
		ValueColumn:    "Value",
		Operator:       aggregation.OpSum,
	}
}

// LoadFile reads a YAML report definition, fills omitted fields from the
// default, validates it, and fingerprints the raw bytes.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading report definition %s: %w", path, err)
	}

	var raw rawDefinition
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Definition{}, fmt.Errorf("parsing report definition %s: %w", path, err)
	}

	def := Default()
	if strings.TrimSpace(raw.Name) != "" {
		def.Name = strings.TrimSpace(raw.Name)
	}
	if strings.TrimSpace(raw.CategoryColumn) != "" {
		def.CategoryColumn = strings.TrimSpace(raw.CategoryColumn)
	}
	if strings.TrimSpace(raw.ValueColumn) != "" {
		def.ValueColumn = strings.TrimSpace(raw.ValueColumn)
	}
	if strings.TrimSpace(raw.Operator) != "" {
		def.Operator = strings.TrimSpace(raw.Operator)
	}
	def.Fingerprint = fmt.Sprintf("%x", sha256.Sum256(data))

	if err := def.Validate(); err != nil {
		return Definition{}, fmt.Errorf("report definition %s: %w", path, err)
	}
	return def, nil
}

// Validate checks the definition is complete and names a known operator.
func (d Definition) Validate() error {
	if d.CategoryColumn == "" {
		return fmt.Errorf("category_column is required")
	}
	if d.ValueColumn == "" && d.Operator != aggregation.OpCount {
		return fmt.Errorf("value_column is required for operator %q", d.Operator)
	}
	if !aggregation.ValidOperator(d.Operator) {
		return fmt.Errorf("unknown operator %q", d.Operator)
	}
	return nil
}
