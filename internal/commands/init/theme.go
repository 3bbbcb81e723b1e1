package initcmd

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/sheet/internal/core/styles"
)

// wizardTheme colors the huh prompts with the active sheet palette.
func wizardTheme() *huh.Theme {
	primary := lipgloss.Color(styles.Hex(styles.ColorPrimary))
	muted := lipgloss.Color(styles.Hex(styles.ColorMuted))
	success := lipgloss.Color(styles.Hex(styles.ColorSuccess))
	failure := lipgloss.Color(styles.Hex(styles.ColorError))

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(primary)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(success)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(failure)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(failure)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

	return t
}
