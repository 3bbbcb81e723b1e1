package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestSelectFormField(t *testing.T) {
	options := []Option{
		{Label: "Job Request", Value: "jobRequest"},
		{Label: "Submitter", Value: "submitter"},
		{Label: "Priority", Value: "priority"},
	}

	t.Run("creation with no default", func(t *testing.T) {
		f := NewSelectFormField("Field", options, "")
		assert.Equal(t, "Field", f.Label())
		assert.False(t, f.Focused())
		assert.Equal(t, "jobRequest", f.Value())
	})

	t.Run("default selects by value", func(t *testing.T) {
		f := NewSelectFormField("Field", options, "submitter")
		assert.Equal(t, "submitter", f.Value())
	})

	t.Run("unknown default falls back to first", func(t *testing.T) {
		f := NewSelectFormField("Field", options, "color")
		assert.Equal(t, "jobRequest", f.Value())
	})

	t.Run("empty options", func(t *testing.T) {
		f := NewSelectFormField("Field", nil, "")
		assert.Empty(t, f.Value())
	})

	t.Run("ignores keys while blurred", func(t *testing.T) {
		f := NewSelectFormField("Field", options, "")
		f.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
		assert.Equal(t, "jobRequest", f.Value())
	})

	t.Run("down moves selection", func(t *testing.T) {
		f := NewSelectFormField("Field", options, "")
		f.Focus()
		f.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
		assert.Equal(t, "submitter", f.Value())
		assert.False(t, f.IsFiltering())
	})

	t.Run("view shows labels", func(t *testing.T) {
		f := NewSelectFormField("Field", options, "")
		view := f.View()
		assert.Contains(t, view, "Job Request")
		assert.Contains(t, view, "Priority")
	})
}
