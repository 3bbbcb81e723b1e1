// Package config handles configuration loading and validation for sheet.
package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/core/styles"
)

// Default values used when the config file leaves an option unset.
const (
	DefaultExportPath  = "spreadsheet-data.csv"
	DefaultAssistDelay = 1500 * time.Millisecond
)

// DefaultTabs are the bottom tab labels of a new sheet.
var DefaultTabs = []string{"All Orders", "Pending", "Reviewed", "Arrived"}

// Config holds the application configuration.
type Config struct {
	Theme    string    `yaml:"theme"`
	SeedFile string    `yaml:"seed_file"` // CSV replacing the built-in seed records
	CSV      CSVConfig `yaml:"csv"`
	TUI      TUIConfig `yaml:"tui"`
}

// CSVConfig controls import and export.
type CSVConfig struct {
	Dialect    sheet.Dialect `yaml:"dialect"`
	ExportPath string        `yaml:"export_path"`
}

// TUIConfig holds terminal UI options.
type TUIConfig struct {
	Tabs          []string      `yaml:"tabs"`
	HiddenColumns []sheet.Field `yaml:"hidden_columns"`
	// AssistDelay is how long the answer and extract dialogs show a spinner.
	AssistDelay time.Duration `yaml:"assist_delay"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultTheme,
		CSV: CSVConfig{
			Dialect:    sheet.DialectCompat,
			ExportPath: DefaultExportPath,
		},
		TUI: TUIConfig{
			Tabs:          slices.Clone(DefaultTabs),
			HiddenColumns: []sheet.Field{},
			AssistDelay:   DefaultAssistDelay,
		},
	}
}

// Load reads configuration from the given path and validates it. A missing
// file yields the defaults.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses the config file and fills defaults without validating.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills options the file set to an empty value.
func (c *Config) applyDefaults() {
	if c.Theme == "" {
		c.Theme = styles.DefaultTheme
	}
	if c.CSV.Dialect == "" {
		c.CSV.Dialect = sheet.DialectCompat
	}
	if c.TUI.Tabs == nil {
		c.TUI.Tabs = slices.Clone(DefaultTabs)
	}
}

// Hidden reports whether the column is hidden by default.
func (c *Config) Hidden(f sheet.Field) bool {
	return slices.Contains(c.TUI.HiddenColumns, f)
}

// Marshal encodes the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
