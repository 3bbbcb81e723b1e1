package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/sheet/internal/core/config"
	"github.com/hay-kot/sheet/internal/core/sheet"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Sheet is built from the seed in the Before hook
	Sheet *sheet.Sheet
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "sheet", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/sheet/sheet.log
// On Linux: $XDG_STATE_HOME/sheet/sheet.log (defaults to ~/.local/state/sheet/sheet.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "sheet", "sheet.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "sheet", "sheet.log")
	}

	return filepath.Join(home, ".local", "state", "sheet", "sheet.log")
}
