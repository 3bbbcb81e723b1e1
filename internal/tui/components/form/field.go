package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text/textarea/select, []string for multi-select
	Label() string // Display label for the field
}

// validator is implemented by fields that carry validation rules. Validate
// records the error on the field so View can render it.
type validator interface {
	Validate() bool
}
