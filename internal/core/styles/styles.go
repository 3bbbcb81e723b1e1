// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/hay-kot/sheet/internal/core/sheet"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle  lipgloss.Style
	DividerStyle        lipgloss.Style
	TextForegroundStyle lipgloss.Style
	TextPrimaryStyle    lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextErrorStyle      lipgloss.Style
	TextSuccessStyle    lipgloss.Style

	// Header, toolbar and tabs.
	TitleStyle      lipgloss.Style
	SearchStyle     lipgloss.Style
	SearchIdleStyle lipgloss.Style
	ToolbarStyle    lipgloss.Style
	ToolbarKeyStyle lipgloss.Style
	BadgeStyle      lipgloss.Style
	TabStyle        lipgloss.Style
	TabActiveStyle  lipgloss.Style
	StatusLineStyle lipgloss.Style

	// Grid.
	GridHeaderStyle   lipgloss.Style
	GridCellStyle     lipgloss.Style
	GridCursorStyle   lipgloss.Style
	GridSelectedStyle lipgloss.Style
	GridLinkStyle     lipgloss.Style
	GridEmptyStyle    lipgloss.Style

	// Modals.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	// Forms.
	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style
	FormCheckedStyle      lipgloss.Style
	FormItemSelectedStyle lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		PaddingRight(2)
	SearchStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	SearchIdleStyle = SearchStyle.
		BorderForeground(ColorSurface)
	ToolbarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingLeft(1)
	ToolbarKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	BadgeStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorSecondary).
		Padding(0, 1)
	TabStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 2)
	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorSurface).
		Bold(true).
		Padding(0, 2)
	StatusLineStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingLeft(1)

	GridHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Bold(true)
	GridCellStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	GridCursorStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Bold(true)
	GridSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
	GridLinkStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	GridEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Padding(1, 2)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormCheckedStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	FormItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorForeground)
	ToastInfoStyle = toast.BorderForeground(ColorPrimary)
	ToastSuccessStyle = toast.BorderForeground(ColorSuccess)
	ToastWarningStyle = toast.BorderForeground(ColorWarning)
	ToastErrorStyle = toast.BorderForeground(ColorError)
}

// StatusStyle returns the text style of a status badge.
func StatusStyle(s sheet.Status) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch s {
	case sheet.StatusComplete:
		return st.Foreground(ColorSuccess)
	case sheet.StatusInProgress:
		return st.Foreground(ColorWarning)
	case sheet.StatusBlocked:
		return st.Foreground(ColorError)
	default:
		return st.Foreground(ColorMuted)
	}
}

// PriorityStyle returns the text style of a priority badge.
func PriorityStyle(p sheet.Priority) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch p {
	case sheet.PriorityHigh:
		return st.Foreground(ColorError)
	case sheet.PriorityMedium:
		return st.Foreground(ColorWarning)
	default:
		return st.Foreground(ColorSecondary)
	}
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// Hex returns c as a #rrggbb string, or "" when c is nil.
func Hex(c color.Color) string {
	if h := colorHexPtr(c); h != nil {
		return *h
	}
	return ""
}

// GlamourStyle returns a Glamour style config derived from the active theme.
// Document margins are removed so answers fit inside modals.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	var zero uint
	cfg.Document.Margin = &zero
	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.Strong.Color = secondary
	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted
	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary
	cfg.Code.Color = secondary

	cfg.Table.Color = fg
	cfg.Item.Color = fg

	return cfg
}
