package initcmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/sheet/internal/core/config"
	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/hay-kot/sheet/internal/core/styles"
)

func TestAnswers_Config(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := DefaultAnswers().Config()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("custom values", func(t *testing.T) {
		cfg, err := Answers{
			Theme:      "gruvbox",
			Dialect:    "standard",
			ExportPath: "out/orders.csv",
			Tabs:       " Open , Done,, ",
		}.Config()
		require.NoError(t, err)

		assert.Equal(t, "gruvbox", cfg.Theme)
		assert.Equal(t, sheet.DialectStandard, cfg.CSV.Dialect)
		assert.Equal(t, "out/orders.csv", cfg.CSV.ExportPath)
		assert.Equal(t, []string{"Open", "Done"}, cfg.TUI.Tabs)
	})

	t.Run("invalid", func(t *testing.T) {
		a := DefaultAnswers()
		a.Tabs = " , "
		_, err := a.Config()
		assert.Error(t, err)
	})
}

func TestWizard_YesWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet", "config.yaml")

	err := NewWizard(WizardOptions{ConfigPath: path, Yes: true}).Run(t.Context())
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), *loaded)
}

func TestWizard_YesRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: gruvbox\n"), 0o644))

	err := NewWizard(WizardOptions{ConfigPath: path, Yes: true}).Run(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	t.Run("force backs up", func(t *testing.T) {
		err := NewWizard(WizardOptions{ConfigPath: path, Yes: true, Force: true}).Run(t.Context())
		require.NoError(t, err)

		backup, err := os.ReadFile(path + ".bak")
		require.NoError(t, err)
		assert.Equal(t, "theme: gruvbox\n", string(backup))
	})
}

func TestBackupConfig_Missing(t *testing.T) {
	backup, err := BackupConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Empty(t, backup)
}

func TestWizardTheme_UsesPalette(t *testing.T) {
	theme := wizardTheme()
	require.NotNil(t, theme)

	want := lipgloss.Color(styles.Hex(styles.ColorPrimary))
	assert.Equal(t, want, theme.Focused.Title.GetForeground())
	assert.True(t, strings.HasPrefix(string(want), "#"))
}
