package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/sheet/internal/core/styles"
)

const (
	infoModalMaxHeight = 30
	infoModalMargin    = 4
	infoModalChrome    = 6 // title + divider + help + spacing
	infoModalMinWidth  = 50
)

// InfoStatus represents the status of an info item.
type InfoStatus int

const (
	InfoStatusNone InfoStatus = iota
	InfoStatusPass
	InfoStatusWarn
	InfoStatusFail
)

// InfoItem is a single labeled row in an info section.
type InfoItem struct {
	Label  string
	Value  string
	Status InfoStatus
}

// InfoSection groups related info items under a section title.
type InfoSection struct {
	Title string
	Items []InfoItem
}

// InfoDialog displays scrollable content: either structured sections or a
// pre-rendered body such as glamour output.
type InfoDialog struct {
	title    string
	helpText string
	width    int
	height   int
	viewport viewport.Model
}

// NewInfoDialog creates a dialog listing sections followed by footer.
func NewInfoDialog(title string, sections []InfoSection, footer, helpText string, width, height int) *InfoDialog {
	d := newInfoDialog(title, helpText, width, height)
	d.viewport.SetContent(renderSections(sections, footer, d.modalWidth()))
	return d
}

// NewTextDialog creates a dialog showing body as is.
func NewTextDialog(title, body, helpText string, width, height int) *InfoDialog {
	d := newInfoDialog(title, helpText, width, height)
	d.viewport.SetContent(body)
	return d
}

func newInfoDialog(title, helpText string, width, height int) *InfoDialog {
	d := &InfoDialog{
		title:    title,
		helpText: helpText,
		width:    width,
		height:   height,
	}
	d.viewport = viewport.New(
		viewport.WithWidth(d.modalWidth()-4),
		viewport.WithHeight(max(d.modalHeight()-infoModalChrome, 1)),
	)
	return d
}

func (d *InfoDialog) modalWidth() int {
	return max(min(max(int(float64(d.width)*0.65), infoModalMinWidth), d.width-infoModalMargin), 10)
}

func (d *InfoDialog) modalHeight() int {
	return max(min(d.height-infoModalMargin, infoModalMaxHeight), infoModalChrome+1)
}

// SetContent replaces the dialog body.
func (d *InfoDialog) SetContent(body string) {
	d.viewport.SetContent(body)
	d.viewport.GotoTop()
}

// ContentWidth is the width available to pre-rendered bodies.
func (d *InfoDialog) ContentWidth() int {
	return d.modalWidth() - 4
}

func renderSections(sections []InfoSection, footer string, modalWidth int) string {
	separator := styles.TextMutedStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	lines := make([]string, 0)

	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.FormTitleStyle.Render(section.Title), separator)
		}
		for _, item := range section.Items {
			lines = append(lines, formatInfoItem(item))
		}
	}

	if footer != "" {
		lines = append(lines, "", footer)
	}

	return strings.Join(lines, "\n")
}

func formatInfoItem(item InfoItem) string {
	label := styles.TextForegroundStyle.Bold(true).Render(item.Label)
	if item.Value == "" {
		if icon := statusIcon(item.Status); icon != "" {
			return icon + " " + label
		}
		return label
	}

	value := styles.TextMutedStyle.Render(item.Value)
	if icon := statusIcon(item.Status); icon != "" {
		return fmt.Sprintf("%s %s  %s", icon, label, value)
	}
	return fmt.Sprintf("%s  %s", label, value)
}

func statusIcon(s InfoStatus) string {
	switch s {
	case InfoStatusPass:
		return styles.TextSuccessStyle.Render("✔")
	case InfoStatusWarn:
		return lipgloss.NewStyle().Foreground(styles.ColorWarning).Render("●")
	case InfoStatusFail:
		return styles.TextErrorStyle.Render("✘")
	default:
		return ""
	}
}

// ScrollUp scrolls the viewport up.
func (d *InfoDialog) ScrollUp() {
	d.viewport.ScrollUp(1)
}

// ScrollDown scrolls the viewport down.
func (d *InfoDialog) ScrollDown() {
	d.viewport.ScrollDown(1)
}

// View renders the framed dialog.
func (d *InfoDialog) View() string {
	modalWidth := d.modalWidth()

	scrollInfo := ""
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.TextMutedStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	modalContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(d.title+scrollInfo),
		divider,
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.helpText),
	)

	return styles.ModalStyle.
		Width(modalWidth).
		Render(modalContent)
}

// Overlay renders the dialog centered over the provided background.
func (d *InfoDialog) Overlay(background string, width, height int) string {
	return Overlay(background, d.View(), width, height)
}
