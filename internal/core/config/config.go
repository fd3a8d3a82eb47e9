package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tally-lab/project-tally/internal/core/report"
)

// Config is the top-level application config plus the resolved report
// definition.
type Config struct {
	Input  InputConfig  `koanf:"input"`
	Report ReportConfig `koanf:"report"`
	Output OutputConfig `koanf:"output"`

	// Resolved is populated by Load after merging the report definition
	// file (if any) with inline overrides.
	Resolved report.Definition `koanf:"-"`
}

// InputConfig identifies the tabular source.
type InputConfig struct {
	Path      string `koanf:"path"`
	Delimiter string `koanf:"delimiter"` // single rune; "," unless overridden
}

// ReportConfig selects the report definition. Path points at an optional
// YAML definition file; the inline keys override whatever the file (or the
// built-in default) provides.
type ReportConfig struct {
	Path           string `koanf:"path"`
	CategoryColumn string `koanf:"category_column"`
	ValueColumn    string `koanf:"value_column"`
	Operator       string `koanf:"operator"`
}

// OutputConfig controls JSON rendering.
type OutputConfig struct {
	Pretty bool `koanf:"pretty"`
	Indent int  `koanf:"indent"` // spaces per level when pretty
}

// DelimiterRune returns the configured delimiter as a rune.
func (c InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return fmt.Errorf("input.path is required")
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must be >= 0")
	}
	if c.Output.Pretty && c.Output.Indent == 0 {
		return fmt.Errorf("output.indent must be > 0 when output.pretty is set")
	}
	return nil
}

// Load parses config from defaults + optional file + env, validates it, then
// resolves the report definition. Env vars use the TALLY_ prefix with double
// underscores as section separators (TALLY_INPUT__PATH → input.path).
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"input.path":             "data.csv",
		"input.delimiter":        ",",
		"report.path":            "",
		"report.category_column": "",
		"report.value_column":    "",
		"report.operator":        "",
		"output.pretty":          true,
		"output.indent":          2,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("TALLY_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "TALLY_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	def, err := resolveDefinition(cfg.Report)
	if err != nil {
		return nil, err
	}
	cfg.Resolved = def

	return &cfg, nil
}

// resolveDefinition layers the report definition: built-in default, then the
// YAML file when report.path is set, then inline config keys on top.
func resolveDefinition(rc ReportConfig) (report.Definition, error) {
	def := report.Default()
	if rc.Path != "" {
		loaded, err := report.LoadFile(rc.Path)
		if err != nil {
			return report.Definition{}, err
		}
		def = loaded
	}
	if rc.CategoryColumn != "" {
		def.CategoryColumn = rc.CategoryColumn
	}
	if rc.ValueColumn != "" {
		def.ValueColumn = rc.ValueColumn
	}
	if rc.Operator != "" {
		def.Operator = rc.Operator
	}
	if err := def.Validate(); err != nil {
		return report.Definition{}, fmt.Errorf("report definition: %w", err)
	}
	return def, nil
}
