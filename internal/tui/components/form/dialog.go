// Package form provides focusable form fields and a dialog container used by
// the TUI modals.
package form

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/sheet/internal/core/styles"
)

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	keys         []string // parallel slice: value key for each field
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
	Hint         string // extra help line shown above the key help
}

// NewDialog creates a form dialog with the given fields and value keys.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, keys []string) *Dialog {
	d := &Dialog{
		fields: fields,
		keys:   keys,
		Title:  title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "enter":
		if d.isTextAreaFocused() || d.isFocusedFieldFiltering() {
			return d.updateFocusedField(msg)
		}
		return d.advanceFocus()
	case "ctrl+s":
		return d.submit()
	case "esc":
		if d.isFocusedFieldFiltering() {
			// Let the field handle esc to exit filter mode
			return d.updateFocusedField(msg)
		}
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders the title and all fields vertically with help text.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.ModalTitleStyle.Render(d.Title), "")
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	parts = append(parts, "")
	if d.Hint != "" {
		parts = append(parts, styles.FormHelpStyle.Render(d.Hint))
	}
	help := styles.FormHelpStyle.Render("tab: next  shift+tab: prev  enter: next/submit  ctrl+s: submit  esc: cancel")
	parts = append(parts, help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of value keys to field values.
func (d *Dialog) FormValues() map[string]any {
	result := make(map[string]any, len(d.fields))
	for i, field := range d.fields {
		result[d.keys[i]] = field.Value()
	}
	return result
}

// String returns the trimmed string value stored under key.
func (d *Dialog) String(key string) string {
	s, _ := d.FormValues()[key].(string)
	return strings.TrimSpace(s)
}

// Strings returns the []string value stored under key.
func (d *Dialog) Strings(key string) []string {
	s, _ := d.FormValues()[key].([]string)
	return s
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		return d.submit()
	}

	return d, d.focus(next)
}

// submit validates every field and either marks the dialog submitted or
// moves focus to the first invalid field.
func (d *Dialog) submit() (*Dialog, tea.Cmd) {
	invalid := -1
	for i, f := range d.fields {
		if v, ok := f.(validator); ok && !v.Validate() && invalid < 0 {
			invalid = i
		}
	}
	if invalid >= 0 {
		return d, d.focus(invalid)
	}

	d.submitted = true
	return d, nil
}

func (d *Dialog) focus(i int) tea.Cmd {
	if i == d.focusedField {
		return nil
	}
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d.fields[d.focusedField].Focus()
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}
	return d, d.focus(d.focusedField - 1)
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isTextAreaFocused() bool {
	if len(d.fields) == 0 {
		return false
	}
	_, ok := d.fields[d.focusedField].(*TextAreaField)
	return ok
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
