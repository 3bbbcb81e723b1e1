package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/core/styles"
)

// Validate checks the structure of the configuration without touching the
// filesystem.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("csv.dialect", c.CSV.Dialect, knownDialect),
		criterio.Run("csv.export_path", c.CSV.ExportPath, notBlank),
		c.validateTabs(),
		c.validateHiddenColumns(),
		criterio.Run("tui.assist_delay", c.TUI.AssistDelay.Milliseconds(), nonNegative),
	)
}

// ValidateDeep performs Validate and then checks referenced files. An empty
// configPath skips the config file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("seed_file", c.resolve(configPath, c.SeedFile), isFileOrEmpty),
		criterio.Run("csv.export_path", filepath.Dir(c.CSV.ExportPath), isDirectoryOrNotExist),
	)
}

// SeedPath returns the seed file path relative to the config file directory.
func (c *Config) SeedPath(configPath string) string {
	return c.resolve(configPath, c.SeedFile)
}

func (c *Config) resolve(configPath, p string) string {
	if p == "" || filepath.IsAbs(p) || configPath == "" {
		return p
	}
	return filepath.Join(filepath.Dir(configPath), p)
}

func (c *Config) validateTabs() error {
	var errs criterio.FieldErrorsBuilder
	if len(c.TUI.Tabs) == 0 {
		errs = errs.Append("tui.tabs", errors.New("at least one tab is required"))
	}

	seen := make(map[string]bool, len(c.TUI.Tabs))
	for i, tab := range c.TUI.Tabs {
		field := fmt.Sprintf("tui.tabs[%d]", i)
		name := strings.TrimSpace(tab)
		if name == "" {
			errs = errs.Append(field, errors.New("tab name cannot be empty"))
			continue
		}
		if seen[name] {
			errs = errs.Append(field, fmt.Errorf("duplicate tab %q", name))
		}
		seen[name] = true
	}
	return errs.ToError()
}

func (c *Config) validateHiddenColumns() error {
	var errs criterio.FieldErrorsBuilder
	for i, f := range c.TUI.HiddenColumns {
		if !f.Valid() || f == sheet.FieldID {
			errs = errs.Append(fmt.Sprintf("tui.hidden_columns[%d]", i), fmt.Errorf("unknown column %q", f))
		}
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, want one of %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func knownDialect(d sheet.Dialect) error {
	if !d.Valid() {
		return fmt.Errorf("unknown dialect %q, want compat or standard", d)
	}
	return nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func nonNegative(ms int64) error {
	if ms < 0 {
		return errors.New("cannot be negative")
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func isFileOrEmpty(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" || path == "." {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // created on export
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
