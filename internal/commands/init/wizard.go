// Package initcmd implements the sheet init wizard.
package initcmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/natefinch/atomic"

	"github.com/hay-kot/sheet/internal/core/config"
	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/core/styles"
	"github.com/hay-kot/sheet/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Answers are the values collected by the prompts.
type Answers struct {
	Theme      string
	Dialect    string
	ExportPath string
	Tabs       string // comma-separated
}

// DefaultAnswers returns the answers matching config.DefaultConfig.
func DefaultAnswers() Answers {
	cfg := config.DefaultConfig()
	return Answers{
		Theme:      cfg.Theme,
		Dialect:    string(cfg.CSV.Dialect),
		ExportPath: cfg.CSV.ExportPath,
		Tabs:       strings.Join(cfg.TUI.Tabs, ", "),
	}
}

// Config builds a validated config from the answers.
func (a Answers) Config() (config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Theme = a.Theme
	cfg.CSV.Dialect = sheet.Dialect(a.Dialect)
	cfg.CSV.ExportPath = expandHome(strings.TrimSpace(a.ExportPath))

	var tabs []string
	for _, t := range strings.Split(a.Tabs, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tabs = append(tabs, t)
		}
	}
	cfg.TUI.Tabs = tabs

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers()
	if !w.opts.Yes {
		if err := promptUser(&answers); err != nil {
			return err
		}
	}

	cfg, err := answers.Config()
	if err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	if ConfigExists(w.opts.ConfigPath) {
		backupPath, err := BackupConfig(w.opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			p.Successf("Backed up config to: %s", backupPath)
		}
	}

	if err := WriteConfig(cfg, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'sheet config validate' to check the file")
	p.Printf("  2. Run 'sheet' to open the spreadsheet")
	return nil
}

func promptUser(a *Answers) error {
	themes := huh.NewOptions(styles.ThemeNames()...)

	dialects := make([]huh.Option[string], len(sheet.Dialects))
	for i, d := range sheet.Dialects {
		dialects[i] = huh.NewOption(string(d), string(d))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themes...).
			Value(&a.Theme),
		huh.NewSelect[string]().
			Title("CSV dialect").
			Description("compat joins fields with bare commas; standard is RFC 4180").
			Options(dialects...).
			Value(&a.Dialect),
		huh.NewInput().
			Title("Export path").
			Description("Where x in the spreadsheet writes the CSV").
			Value(&a.ExportPath),
		huh.NewInput().
			Title("Tabs").
			Description("Comma-separated tab names").
			Value(&a.Tabs),
	)).WithTheme(wizardTheme())

	return form.Run()
}

// WriteConfig atomically writes cfg as YAML, creating parent directories.
func WriteConfig(cfg config.Config, path string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
