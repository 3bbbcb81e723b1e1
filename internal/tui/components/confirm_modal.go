package components

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/sheet/internal/core/styles"
)

// ConfirmModal is a simple yes/no confirmation dialog. Left and right move
// between the buttons, enter picks the highlighted one.
type ConfirmModal struct {
	title     string
	message   string
	yes       bool
	confirmed bool
	cancelled bool
}

// NewConfirmModal creates a new confirmation modal with "No" highlighted.
func NewConfirmModal(title, message string) ConfirmModal {
	return ConfirmModal{
		title:   title,
		message: message,
	}
}

// Update handles input for the confirmation modal.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N", "esc":
		m.cancelled = true
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
	case "enter":
		if m.yes {
			m.confirmed = true
		} else {
			m.cancelled = true
		}
	}

	return m, nil
}

// View renders the confirmation modal.
func (m ConfirmModal) View() string {
	yes, no := styles.ModalButtonStyle, styles.ModalButtonSelectedStyle
	if m.yes {
		yes, no = no, yes
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes.Render("Yes"), "  ", no.Render("No"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		styles.TextForegroundStyle.Render(m.message),
		"",
		buttons,
		styles.ModalHelpStyle.Render("y/n  ←/→ choose  enter confirm"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the modal centered over background.
func (m ConfirmModal) Overlay(background string, width, height int) string {
	return Overlay(background, m.View(), width, height)
}

// Confirmed returns true if user confirmed.
func (m ConfirmModal) Confirmed() bool {
	return m.confirmed
}

// Cancelled returns true if user cancelled.
func (m ConfirmModal) Cancelled() bool {
	return m.cancelled
}
