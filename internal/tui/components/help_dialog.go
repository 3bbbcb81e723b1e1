// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/sheet/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog displays all available keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
	}
}

// View renders the help dialog. Sections are laid out in two columns.
func (h *HelpDialog) View() string {
	title := styles.ModalTitleStyle.Render(h.title)

	half := (len(h.sections) + 1) / 2
	left := h.renderSections(h.sections[:half])
	right := h.renderSections(h.sections[half:])

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	help := styles.ModalHelpStyle.Render("esc/? close")

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, help))
}

// Overlay renders the help dialog as a layer over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return Overlay(background, h.View(), width, height)
}

func (h *HelpDialog) renderSections(sections []HelpDialogSection) string {
	separator := styles.TextMutedStyle.Render(strings.Repeat("─", 25))

	var lines []string
	for i, section := range sections {
		if section.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, styles.FormTitleStyle.Render(section.Title), separator)
		}
		for _, entry := range section.Entries {
			lines = append(lines, formatKeyDesc(entry.Key, entry.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// formatKeyDesc formats a key-description pair with consistent alignment.
func formatKeyDesc(key, desc string) string {
	const keyWidth = 10

	// display width, keys may contain arrows
	pad := max(keyWidth-lipgloss.Width(key), 1)
	return styles.ToolbarKeyStyle.Render(key+strings.Repeat(" ", pad)) + styles.TextForegroundStyle.Render(desc)
}
