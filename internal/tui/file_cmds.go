package tui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/natefinch/atomic"
)

// readImportSource treats a single-line source naming a regular file as a
// path and anything else as pasted CSV text.
func readImportSource(source string) tea.Cmd {
	return func() tea.Msg {
		if path, ok := importPath(source); ok {
			data, err := os.ReadFile(path)
			if err != nil {
				return importDataMsg{source: path, err: fmt.Errorf("read %s: %w", path, err)}
			}
			return importDataMsg{source: filepath.Base(path), data: data}
		}
		return importDataMsg{source: "pasted text", data: []byte(source)}
	}
}

func importPath(source string) (string, bool) {
	source = strings.TrimSpace(source)
	if source == "" || strings.ContainsAny(source, "\n\r") {
		return "", false
	}
	if strings.HasPrefix(source, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			source = filepath.Join(home, source[2:])
		}
	}
	info, err := os.Stat(source)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return source, true
}

// writeFileCmd atomically writes data to path, creating parent directories.
func writeFileCmd(op, path string, data []byte, rows int) tea.Cmd {
	return func() tea.Msg {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return exportDoneMsg{op: op, path: path, err: fmt.Errorf("create directory: %w", err)}
			}
		}
		err := atomic.WriteFile(path, bytes.NewReader(data))
		return exportDoneMsg{op: op, path: path, rows: rows, err: err}
	}
}
