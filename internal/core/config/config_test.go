package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/sheet/internal/core/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, sheet.DialectCompat, cfg.CSV.Dialect)
	assert.Equal(t, "spreadsheet-data.csv", cfg.CSV.ExportPath)
	assert.Equal(t, []string{"All Orders", "Pending", "Reviewed", "Arrived"}, cfg.TUI.Tabs)
	assert.Equal(t, 1500*time.Millisecond, cfg.TUI.AssistDelay)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_OverridesAndKeepsUnsetDefaults(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
csv:
  dialect: standard
tui:
  tabs: [Open, Closed]
  hidden_columns: [assigned, estValue]
  assist_delay: 250ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, sheet.DialectStandard, cfg.CSV.Dialect)
	assert.Equal(t, DefaultExportPath, cfg.CSV.ExportPath)
	assert.Equal(t, []string{"Open", "Closed"}, cfg.TUI.Tabs)
	assert.Equal(t, 250*time.Millisecond, cfg.TUI.AssistDelay)
	assert.True(t, cfg.Hidden(sheet.FieldAssigned))
	assert.False(t, cfg.Hidden(sheet.FieldStatus))
}

func TestLoad_EmptyValuesFallBack(t *testing.T) {
	path := writeConfig(t, "theme: \"\"\ncsv:\n  dialect: \"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, sheet.DialectCompat, cfg.CSV.Dialect)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "theme: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "theme: solarized\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "solarized")
}

func TestRead_SkipsValidation(t *testing.T) {
	path := writeConfig(t, "theme: solarized\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "solarized", cfg.Theme)
	assert.Error(t, cfg.Validate())
}

func TestConfig_MarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "catppuccin"
	cfg.TUI.HiddenColumns = []sheet.Field{sheet.FieldDueDate}

	data, err := cfg.Marshal()
	require.NoError(t, err)

	loaded, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestSeedPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.SeedPath("/etc/sheet/config.yaml"))

	cfg.SeedFile = "seed.csv"
	assert.Equal(t, filepath.Join("/etc/sheet", "seed.csv"), cfg.SeedPath("/etc/sheet/config.yaml"))
	assert.Equal(t, "seed.csv", cfg.SeedPath(""))

	cfg.SeedFile = "/data/seed.csv"
	assert.Equal(t, "/data/seed.csv", cfg.SeedPath("/etc/sheet/config.yaml"))
}
